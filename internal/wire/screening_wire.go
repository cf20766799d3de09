package wire

import (
	"cinema-manager/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireScreening(r chi.Router, screeningHandler *adaptor.ScreeningHandler, g guards) {
	r.Route("/api/screenings", func(r chi.Router) {
		r.Use(g.auth)

		// Schedule and seat views for every operator
		r.Group(func(r chi.Router) {
			r.Use(g.staff)
			r.Get("/", screeningHandler.GetScreenings)
			r.Get("/{id}", screeningHandler.GetScreeningByID)
			r.Get("/{id}/availability", screeningHandler.GetAvailability)
			r.Get("/{id}/occupied-seats", screeningHandler.GetOccupiedSeats)
			r.Get("/{id}/seat-map", screeningHandler.GetSeatMap)
			r.Get("/{id}/tickets", screeningHandler.GetTickets)
		})

		// Scheduling for admins
		r.Group(func(r chi.Router) {
			r.Use(g.admin)
			r.Post("/", screeningHandler.CreateScreening)
			r.Put("/{id}", screeningHandler.UpdateScreening)
			r.Delete("/{id}", screeningHandler.DeleteScreening)
		})
	})
}
