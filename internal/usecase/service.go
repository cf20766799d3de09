package usecase

import (
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/event"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	Room      RoomService
	Movie     MovieService
	Screening ScreeningService
	Customer  CustomerService
	Booking   BookingService
	Feedback  FeedbackService
	Report    ReportService
}

func NewService(repo *repository.Repository, publisher event.Publisher, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, log),
		Room:      NewRoomService(repo.Room, config, log),
		Movie:     NewMovieService(repo, log),
		Screening: NewScreeningService(repo, log),
		Customer:  NewCustomerService(repo.Customer, log),
		Booking:   NewBookingService(repo, publisher, config, log),
		Feedback:  NewFeedbackService(repo, log),
		Report:    NewReportService(repo.Report, config, log),
	}
}
