package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewHandler(pollHandler *PollHandler, voteHandler *VoteHandler, healthHandler *HealthHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", pollHandler.Index)
	r.Get("/healthz", healthHandler.Check)

	r.Route("/questions", func(r chi.Router) {
		r.Get("/{id}", pollHandler.Detail)
		r.Get("/{id}/results", pollHandler.Results)
		r.Post("/{id}/vote", voteHandler.Vote)
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/questions", pollHandler.CreateQuestion)
	})

	return r
}
