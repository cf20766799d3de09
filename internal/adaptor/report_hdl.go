package adaptor

import (
	"net/http"

	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// DailyRevenue handles GET /api/reports/revenue?date=
func (h *ReportHandler) DailyRevenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.service.DailyRevenue(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, h.log, err, "daily revenue")
		return
	}

	utils.ResponseSuccess(w, "success", revenue)
}

// WeeklyRevenue handles GET /api/reports/revenue/weekly?end_date=
func (h *ReportHandler) WeeklyRevenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.service.WeeklyRevenue(r.Context(), r.URL.Query().Get("end_date"))
	if err != nil {
		writeError(w, h.log, err, "weekly revenue")
		return
	}

	utils.ResponseSuccess(w, "success", revenue)
}

// Occupancy handles GET /api/reports/occupancy?room_id=&movie_id=&limit=
func (h *ReportHandler) Occupancy(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.OccupancyRequest{Limit: utils.ParseInt(query.Get("limit"), 0)}

	var ok bool
	if req.RoomID, ok = queryID(w, r, "room_id"); !ok {
		return
	}
	if req.MovieID, ok = queryID(w, r, "movie_id"); !ok {
		return
	}

	rates, err := h.service.OccupancyRates(r.Context(), req)
	if err != nil {
		writeError(w, h.log, err, "occupancy rates")
		return
	}

	utils.ResponseSuccess(w, "success", rates)
}

// ScreeningsByDate handles GET /api/reports/screenings?date=
func (h *ReportHandler) ScreeningsByDate(w http.ResponseWriter, r *http.Request) {
	screenings, err := h.service.ScreeningsByDate(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, h.log, err, "screenings by date")
		return
	}

	utils.ResponseSuccess(w, "success", screenings)
}

// PopularMovies handles GET /api/reports/popular-movies?limit=
func (h *ReportHandler) PopularMovies(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 10)

	movies, err := h.service.PopularMovies(r.Context(), limit)
	if err != nil {
		writeError(w, h.log, err, "popular movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}
