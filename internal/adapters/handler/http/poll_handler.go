package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"pollsite/internal/core/domain"
	"pollsite/internal/core/ports"
)

type PollHandler struct {
	service  ports.PollService
	renderer *Renderer
}

func NewPollHandler(service ports.PollService, renderer *Renderer) *PollHandler {
	return &PollHandler{
		service:  service,
		renderer: renderer,
	}
}

// Index renders the five most recently published questions. An empty store
// is not an error; the page says so instead.
func (h *PollHandler) Index(w http.ResponseWriter, r *http.Request) {
	questions, err := h.service.LatestQuestions(r.Context())
	if err != nil {
		log.Printf("listing questions: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, "index.html", indexData{LatestQuestionList: questions}); err != nil {
		log.Printf("rendering index: %v", err)
	}
}

// Detail renders the voting form for a published question.
func (h *PollHandler) Detail(w http.ResponseWriter, r *http.Request) {
	question, ok := h.lookupQuestion(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, "detail.html", detailData{Question: question}); err != nil {
		log.Printf("rendering detail: %v", err)
	}
}

// Results renders the vote counts for a published question.
func (h *PollHandler) Results(w http.ResponseWriter, r *http.Request) {
	question, ok := h.lookupQuestion(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.Render(w, "results.html", resultsData{Question: question}); err != nil {
		log.Printf("rendering results: %v", err)
	}
}

// lookupQuestion resolves the question in the URL, writing the error
// response itself when resolution fails. Unpublished questions answer 404,
// same as missing ones.
func (h *PollHandler) lookupQuestion(w http.ResponseWriter, r *http.Request) (*domain.Question, bool) {
	id := chi.URLParam(r, "id")

	question, err := h.service.GetQuestion(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrQuestionNotFound) {
			http.NotFound(w, r)
			return nil, false
		}

		log.Printf("getting question %s: %v", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return nil, false
	}

	return question, true
}

type createQuestionRequest struct {
	Text    string     `json:"text"`
	PubDate *time.Time `json:"pub_date"`
	Choices []string   `json:"choices"`
}

// CreateQuestion is the administrative seeding endpoint. It speaks JSON,
// unlike the public pages.
func (h *PollHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := ports.CreateQuestionInput{
		Text:    req.Text,
		PubDate: req.PubDate,
		Choices: req.Choices,
	}

	question, err := h.service.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuestion) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		log.Printf("creating question: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(question); err != nil {
		log.Printf("encoding question: %v", err)
	}
}
