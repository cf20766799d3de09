package wire

import (
	"cinema-manager/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTicket(r chi.Router, ticketHandler *adaptor.TicketHandler, g guards) {
	r.Group(func(r chi.Router) {
		r.Use(g.auth)
		r.Use(g.staff)

		r.With(g.rateLimit).Post("/api/tickets", ticketHandler.Book)
		r.Get("/api/tickets", ticketHandler.GetTickets)
		r.Get("/api/tickets/{id}", ticketHandler.GetTicket)
		r.Post("/api/tickets/{id}/cancel", ticketHandler.Cancel)

		// Append-only booking log
		r.Get("/api/audit", ticketHandler.GetAudit)
	})
}
