package wire

import (
	"cinema-manager/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReport(r chi.Router, reportHandler *adaptor.ReportHandler, g guards) {
	r.Route("/api/reports", func(r chi.Router) {
		r.Use(g.auth)
		r.Use(g.admin)

		r.Get("/revenue", reportHandler.DailyRevenue)
		r.Get("/revenue/weekly", reportHandler.WeeklyRevenue)
		r.Get("/occupancy", reportHandler.Occupancy)
		r.Get("/screenings", reportHandler.ScreeningsByDate)
		r.Get("/popular-movies", reportHandler.PopularMovies)
	})
}
