package wire

import (
	"cinema-manager/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFeedback(r chi.Router, feedbackHandler *adaptor.FeedbackHandler, g guards) {
	r.Route("/api/feedback", func(r chi.Router) {
		r.Use(g.auth)
		r.Use(g.staff)

		r.Get("/", feedbackHandler.GetFeedback)
		r.Post("/", feedbackHandler.CreateFeedback)
		r.Put("/{id}", feedbackHandler.UpdateFeedback)
		r.Delete("/{id}", feedbackHandler.DeleteFeedback)
	})
}
