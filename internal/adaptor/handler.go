package adaptor

import (
	"cinema-manager/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	Room      *RoomHandler
	Movie     *MovieHandler
	Screening *ScreeningHandler
	Customer  *CustomerHandler
	Ticket    *TicketHandler
	Feedback  *FeedbackHandler
	Report    *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		Room:      NewRoomHandler(service.Room, log),
		Movie:     NewMovieHandler(service.Movie, log),
		Screening: NewScreeningHandler(service.Screening, service.Booking, log),
		Customer:  NewCustomerHandler(service.Customer, log),
		Ticket:    NewTicketHandler(service.Booking, log),
		Feedback:  NewFeedbackHandler(service.Feedback, log),
		Report:    NewReportHandler(service.Report, log),
	}
}
