package adaptor

import (
	"net/http"

	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

// ScreeningHandler serves the schedule and the per-screening seat views.
type ScreeningHandler struct {
	service usecase.ScreeningService
	booking usecase.BookingService
	log     *zap.Logger
}

func NewScreeningHandler(service usecase.ScreeningService, booking usecase.BookingService, log *zap.Logger) *ScreeningHandler {
	return &ScreeningHandler{
		service: service,
		booking: booking,
		log:     log.With(zap.String("handler", "screening")),
	}
}

// GetScreenings handles GET /api/screenings, optionally filtered by ?date=
func (h *ScreeningHandler) GetScreenings(w http.ResponseWriter, r *http.Request) {
	var (
		screenings any
		err        error
	)
	if r.URL.Query().Has("date") {
		screenings, err = h.service.GetScreeningsByDate(r.Context(), r.URL.Query().Get("date"))
	} else {
		screenings, err = h.service.GetScreenings(r.Context())
	}
	if err != nil {
		writeError(w, h.log, err, "get screenings")
		return
	}

	utils.ResponseSuccess(w, "success", screenings)
}

// GetScreeningByID handles GET /api/screenings/{id}
func (h *ScreeningHandler) GetScreeningByID(w http.ResponseWriter, r *http.Request) {
	screeningID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	screening, err := h.service.GetScreeningByID(r.Context(), screeningID)
	if err != nil {
		writeError(w, h.log, err, "get screening by ID")
		return
	}

	utils.ResponseSuccess(w, "success", screening)
}

// CreateScreening handles POST /api/screenings (admin only)
func (h *ScreeningHandler) CreateScreening(w http.ResponseWriter, r *http.Request) {
	var req request.ScreeningRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	screening, err := h.service.CreateScreening(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err, "create screening")
		return
	}

	utils.ResponseCreated(w, "Screening created", screening)
}

// UpdateScreening handles PUT /api/screenings/{id} (admin only)
func (h *ScreeningHandler) UpdateScreening(w http.ResponseWriter, r *http.Request) {
	screeningID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.ScreeningRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	screening, err := h.service.UpdateScreening(r.Context(), screeningID, &req)
	if err != nil {
		writeError(w, h.log, err, "update screening")
		return
	}

	utils.ResponseSuccess(w, "Screening updated", screening)
}

// DeleteScreening handles DELETE /api/screenings/{id} (admin only)
func (h *ScreeningHandler) DeleteScreening(w http.ResponseWriter, r *http.Request) {
	screeningID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteScreening(r.Context(), screeningID); err != nil {
		writeError(w, h.log, err, "delete screening")
		return
	}

	utils.ResponseSuccess(w, "Screening deleted", nil)
}

// GetAvailability handles GET /api/screenings/{id}/availability
func (h *ScreeningHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	screeningID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	availability, err := h.booking.GetSeatAvailability(r.Context(), screeningID)
	if err != nil {
		writeError(w, h.log, err, "get seat availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

// GetOccupiedSeats handles GET /api/screenings/{id}/occupied-seats
func (h *ScreeningHandler) GetOccupiedSeats(w http.ResponseWriter, r *http.Request) {
	screeningID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	seats, err := h.booking.GetOccupiedSeats(r.Context(), screeningID)
	if err != nil {
		writeError(w, h.log, err, "get occupied seats")
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}

// GetSeatMap handles GET /api/screenings/{id}/seat-map?selected=
func (h *ScreeningHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	screeningID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	seatMap, err := h.booking.GetSeatMap(r.Context(), screeningID, r.URL.Query().Get("selected"))
	if err != nil {
		writeError(w, h.log, err, "get seat map")
		return
	}

	utils.ResponseSuccess(w, "success", seatMap)
}

// GetTickets handles GET /api/screenings/{id}/tickets
func (h *ScreeningHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	screeningID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	tickets, err := h.booking.ListScreeningTickets(r.Context(), screeningID)
	if err != nil {
		writeError(w, h.log, err, "get screening tickets")
		return
	}

	utils.ResponseSuccess(w, "success", tickets)
}
