package wire

import (
	"cinema-manager/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler, feedbackHandler *adaptor.FeedbackHandler, g guards) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Use(g.auth)

		r.Group(func(r chi.Router) {
			r.Use(g.staff)
			r.Get("/", movieHandler.GetMovies)
			r.Get("/{id}", movieHandler.GetMovieByID)
			r.Get("/{id}/feedback", feedbackHandler.GetMovieFeedback)
			r.Get("/{id}/rating", feedbackHandler.GetMovieRating)
		})

		r.Group(func(r chi.Router) {
			r.Use(g.admin)
			r.Post("/", movieHandler.CreateMovie)
			r.Put("/{id}", movieHandler.UpdateMovie)
			r.Delete("/{id}", movieHandler.DeleteMovie)
		})
	})

	r.Route("/api/genres", func(r chi.Router) {
		r.Use(g.auth)
		r.With(g.staff).Get("/", movieHandler.GetGenres)
		r.With(g.admin).Post("/", movieHandler.CreateGenre)
	})
}
