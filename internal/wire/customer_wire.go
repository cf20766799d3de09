package wire

import (
	"cinema-manager/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCustomer(r chi.Router, customerHandler *adaptor.CustomerHandler, feedbackHandler *adaptor.FeedbackHandler, g guards) {
	r.Route("/api/customers", func(r chi.Router) {
		r.Use(g.auth)
		r.Use(g.staff)

		r.Get("/", customerHandler.GetCustomers)
		r.Get("/lookup", customerHandler.Lookup)
		r.Post("/", customerHandler.CreateCustomer)
		r.Post("/find-or-create", customerHandler.FindOrCreate)
		r.Get("/{id}", customerHandler.GetCustomerByID)
		r.Put("/{id}", customerHandler.UpdateCustomer)
		r.Delete("/{id}", customerHandler.DeleteCustomer)
		r.Get("/{id}/feedback", feedbackHandler.GetCustomerFeedback)
	})
}
