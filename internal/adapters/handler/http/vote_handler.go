package http

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"pollsite/internal/core/domain"
	"pollsite/internal/core/ports"
)

// noChoiceMessage is shown on the redisplayed form when a vote submission
// carried no usable choice.
const noChoiceMessage = "You didn't select a choice."

type VoteHandler struct {
	service  ports.VoteService
	renderer *Renderer
}

func NewVoteHandler(service ports.VoteService, renderer *Renderer) *VoteHandler {
	return &VoteHandler{
		service:  service,
		renderer: renderer,
	}
}

// Vote casts one vote and redirects to the results page, so a resubmitted
// form replays a GET rather than a second vote. An invalid or missing choice
// redisplays the form with an error message and mutates nothing.
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	questionID := chi.URLParam(r, "id")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	input := ports.CastVoteInput{
		QuestionID: questionID,
		ChoiceID:   r.PostFormValue("choice"),
	}

	question, err := h.service.Cast(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrNoChoiceSelected) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			data := detailData{Question: question, ErrorMessage: noChoiceMessage}
			if err := h.renderer.Render(w, "detail.html", data); err != nil {
				log.Printf("rendering detail: %v", err)
			}
			return
		}
		if errors.Is(err, domain.ErrQuestionNotFound) {
			http.NotFound(w, r)
			return
		}

		log.Printf("casting vote on %s: %v", questionID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/questions/%s/results", question.ID), http.StatusFound)
}
