package adaptor

import (
	"net/http"

	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type FeedbackHandler struct {
	service usecase.FeedbackService
	log     *zap.Logger
}

func NewFeedbackHandler(service usecase.FeedbackService, log *zap.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		service: service,
		log:     log.With(zap.String("handler", "feedback")),
	}
}

// GetFeedback handles GET /api/feedback
func (h *FeedbackHandler) GetFeedback(w http.ResponseWriter, r *http.Request) {
	feedback, err := h.service.GetFeedback(r.Context())
	if err != nil {
		writeError(w, h.log, err, "get feedback")
		return
	}

	utils.ResponseSuccess(w, "success", feedback)
}

// GetMovieFeedback handles GET /api/movies/{id}/feedback
func (h *FeedbackHandler) GetMovieFeedback(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	feedback, err := h.service.GetMovieFeedback(r.Context(), movieID)
	if err != nil {
		writeError(w, h.log, err, "get movie feedback")
		return
	}

	utils.ResponseSuccess(w, "success", feedback)
}

// GetMovieRating handles GET /api/movies/{id}/rating
func (h *FeedbackHandler) GetMovieRating(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	rating, err := h.service.GetMovieRating(r.Context(), movieID)
	if err != nil {
		writeError(w, h.log, err, "get movie rating")
		return
	}

	utils.ResponseSuccess(w, "success", rating)
}

// GetCustomerFeedback handles GET /api/customers/{id}/feedback
func (h *FeedbackHandler) GetCustomerFeedback(w http.ResponseWriter, r *http.Request) {
	customerID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	feedback, err := h.service.GetCustomerFeedback(r.Context(), customerID)
	if err != nil {
		writeError(w, h.log, err, "get customer feedback")
		return
	}

	utils.ResponseSuccess(w, "success", feedback)
}

// CreateFeedback handles POST /api/feedback
func (h *FeedbackHandler) CreateFeedback(w http.ResponseWriter, r *http.Request) {
	var req request.FeedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	feedback, err := h.service.CreateFeedback(r.Context(), &req)
	if err != nil {
		writeError(w, h.log, err, "create feedback")
		return
	}

	utils.ResponseCreated(w, "Feedback recorded", feedback)
}

// UpdateFeedback handles PUT /api/feedback/{id}
func (h *FeedbackHandler) UpdateFeedback(w http.ResponseWriter, r *http.Request) {
	feedbackID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req request.FeedbackUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	feedback, err := h.service.UpdateFeedback(r.Context(), feedbackID, &req)
	if err != nil {
		writeError(w, h.log, err, "update feedback")
		return
	}

	utils.ResponseSuccess(w, "Feedback updated", feedback)
}

// DeleteFeedback handles DELETE /api/feedback/{id}
func (h *FeedbackHandler) DeleteFeedback(w http.ResponseWriter, r *http.Request) {
	feedbackID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteFeedback(r.Context(), feedbackID); err != nil {
		writeError(w, h.log, err, "delete feedback")
		return
	}

	utils.ResponseSuccess(w, "Feedback deleted", nil)
}
