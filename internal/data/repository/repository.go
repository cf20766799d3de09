package repository

import (
	"cinema-manager/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Tx        database.TxRunner
	Room      RoomRepository
	Genre     GenreRepository
	Movie     MovieRepository
	Screening ScreeningRepository
	Customer  CustomerRepository
	Ticket    TicketRepository
	Audit     AuditRepository
	Feedback  FeedbackRepository
	Report    ReportRepository
	Operator  OperatorRepository
	Session   SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Tx:        db,
		Room:      NewRoomRepository(db, log),
		Genre:     NewGenreRepository(db, log),
		Movie:     NewMovieRepository(db, log),
		Screening: NewScreeningRepository(db, log),
		Customer:  NewCustomerRepository(db, log),
		Ticket:    NewTicketRepository(db, log),
		Audit:     NewAuditRepository(db, log),
		Feedback:  NewFeedbackRepository(db, log),
		Report:    NewReportRepository(db, log),
		Operator:  NewOperatorRepository(db, log),
		Session:   NewSessionRepository(db, log),
	}
}
