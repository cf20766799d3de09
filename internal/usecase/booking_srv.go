package usecase

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/dto/response"
	"cinema-manager/internal/event"
	"cinema-manager/pkg/apperror"
	"cinema-manager/pkg/database"
	"cinema-manager/pkg/utils"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

const (
	defaultAuditLimit = 100
	publishTimeout    = 5 * time.Second
)

type BookingService interface {
	// Seat reads, always recomputed from active tickets
	GetSeatAvailability(ctx context.Context, screeningID int64) (*response.SeatAvailabilityResponse, error)
	GetOccupiedSeats(ctx context.Context, screeningID int64) ([]string, error)
	GetSeatMap(ctx context.Context, screeningID int64, selected string) (*response.SeatMapResponse, error)

	// Ticket lifecycle, each call is one transaction
	Book(ctx context.Context, req *request.BookTicketRequest, actor string) (*response.TicketResponse, error)
	Cancel(ctx context.Context, ticketID int64, actor string) (*response.TicketResponse, error)
	GetTicket(ctx context.Context, ticketID int64) (*response.TicketResponse, error)

	ListTickets(ctx context.Context, req *request.TicketListRequest) ([]response.TicketListItem, error)
	ListScreeningTickets(ctx context.Context, screeningID int64) ([]response.TicketListItem, error)
	GetBookingAudit(ctx context.Context) ([]response.AuditEntryResponse, error)
}

type bookingService struct {
	repo      *repository.Repository
	publisher event.Publisher
	config    *utils.Config
	log       *zap.Logger

	booked    metric.Int64Counter
	cancelled metric.Int64Counter
}

func NewBookingService(repo *repository.Repository, publisher event.Publisher, config *utils.Config, log *zap.Logger) BookingService {
	meter := otel.Meter("cinema-manager/booking")

	booked, _ := meter.Int64Counter("cinema.tickets.booked",
		metric.WithDescription("Tickets booked"),
	)
	cancelled, _ := meter.Int64Counter("cinema.tickets.cancelled",
		metric.WithDescription("Tickets cancelled"),
	)

	return &bookingService{
		repo:      repo,
		publisher: publisher,
		config:    config,
		log:       log.With(zap.String("service", "booking")),
		booked:    booked,
		cancelled: cancelled,
	}
}

func resolveActor(actor string) string {
	if actor = strings.TrimSpace(actor); actor == "" {
		return utils.SystemActor
	}
	return actor
}

func (s *bookingService) seatGrid(capacity int) entity.SeatGrid {
	if s.config == nil {
		return entity.NewSeatGrid(capacity, entity.DefaultSeatRows, entity.DefaultSeatColumns)
	}
	return entity.NewSeatGrid(capacity, s.config.Booking.SeatRows, s.config.Booking.SeatColumns)
}

// seatCounts bounds the room capacity by its seat layout, the same bound
// Book enforces. Available never drops below zero.
func (s *bookingService) seatCounts(availability *entity.SeatAvailability) (entity.SeatGrid, int) {
	grid := s.seatGrid(availability.Capacity)
	return grid, max(grid.Capacity-availability.Active, 0)
}

func (s *bookingService) availability(ctx context.Context, screeningID int64) (*entity.SeatAvailability, error) {
	availability, err := s.repo.Screening.GetAvailability(ctx, screeningID)
	if err != nil {
		return nil, fmt.Errorf("get availability: %w", err)
	}
	if availability == nil {
		return nil, fmt.Errorf("screening %d: %w", screeningID, repository.ErrScreeningNotFound)
	}
	return availability, nil
}

func (s *bookingService) GetSeatAvailability(ctx context.Context, screeningID int64) (*response.SeatAvailabilityResponse, error) {
	availability, err := s.availability(ctx, screeningID)
	if err != nil {
		return nil, err
	}

	grid, available := s.seatCounts(availability)
	return &response.SeatAvailabilityResponse{
		ScreeningID: availability.ScreeningID,
		Capacity:    grid.Capacity,
		Available:   available,
		Occupied:    availability.Active,
	}, nil
}

func (s *bookingService) GetOccupiedSeats(ctx context.Context, screeningID int64) ([]string, error) {
	if _, err := s.availability(ctx, screeningID); err != nil {
		return nil, err
	}

	seats, err := s.repo.Screening.FindOccupiedSeats(ctx, screeningID)
	if err != nil {
		return nil, fmt.Errorf("get occupied seats: %w", err)
	}

	sortSeatLabels(seats)
	return seats, nil
}

// sortSeatLabels orders labels row by row, then by column. Unparseable
// labels sort last in lexical order.
func sortSeatLabels(labels []string) {
	slices.SortFunc(labels, func(a, b string) int {
		la, errA := entity.ParseSeatLabel(a)
		lb, errB := entity.ParseSeatLabel(b)
		switch {
		case errA != nil && errB != nil:
			return strings.Compare(a, b)
		case errA != nil:
			return 1
		case errB != nil:
			return -1
		}
		if c := cmp.Compare(la.Row, lb.Row); c != 0 {
			return c
		}
		return cmp.Compare(la.Column, lb.Column)
	})
}

func (s *bookingService) GetSeatMap(ctx context.Context, screeningID int64, selected string) (*response.SeatMapResponse, error) {
	availability, err := s.availability(ctx, screeningID)
	if err != nil {
		return nil, err
	}

	occupied, err := s.repo.Screening.FindOccupiedSeats(ctx, screeningID)
	if err != nil {
		return nil, fmt.Errorf("get occupied seats: %w", err)
	}

	grid, available := s.seatCounts(availability)
	seatMap := buildSeatMap(grid, occupied, selected, available <= 0)
	seatMap.ScreeningID = screeningID
	seatMap.Available = available

	return seatMap, nil
}

// buildSeatMap reduces the grid and its occupied seats to per-seat states.
// A selection that is occupied, off the grid or made on a sold out
// screening is dropped.
func buildSeatMap(grid entity.SeatGrid, occupied []string, selected string, soldOut bool) *response.SeatMapResponse {
	taken := make(map[entity.SeatLabel]bool, len(occupied))
	for _, label := range occupied {
		if seat, err := entity.ParseSeatLabel(label); err == nil {
			taken[seat] = true
		}
	}

	var pick *entity.SeatLabel
	if selected != "" && !soldOut {
		if seat, err := entity.ParseSeatLabel(selected); err == nil && grid.Contains(seat) && !taken[seat] {
			pick = &seat
		}
	}

	seatMap := &response.SeatMapResponse{
		Capacity: grid.Capacity,
		Columns:  grid.Columns,
		Rows:     make([]response.SeatRow, 0, grid.Rows()),
		SoldOut:  soldOut,
	}
	if pick != nil {
		label := pick.String()
		seatMap.Selected = &label
	}

	for row := 0; row < grid.Rows(); row++ {
		letter := byte('A' + row)
		seatRow := response.SeatRow{
			Row:   string(letter),
			Seats: make([]response.SeatCell, 0, grid.Columns),
		}
		for col := 1; col <= grid.Columns; col++ {
			seat := entity.SeatLabel{Row: letter, Column: col}
			state := response.SeatFree
			switch {
			case taken[seat]:
				state = response.SeatOccupied
			case pick != nil && *pick == seat:
				state = response.SeatSelected
			}
			seatRow.Seats = append(seatRow.Seats, response.SeatCell{Label: seat.String(), State: state})
		}
		seatMap.Rows = append(seatMap.Rows, seatRow)
	}

	return seatMap
}

func (s *bookingService) Book(ctx context.Context, req *request.BookTicketRequest, actor string) (*response.TicketResponse, error) {
	const op = "booking.book"

	if err := utils.ValidationError(op, req); err != nil {
		s.log.Warn("Book validation failed", zap.Any("errors", apperror.FieldsOf(err)))
		return nil, err
	}

	seat, err := entity.ParseSeatLabel(req.SeatLabel)
	if err != nil {
		return nil, apperror.Validation(op, map[string]string{"SeatLabel": "Must be a seat label like C3"})
	}

	actor = resolveActor(actor)
	ticket := &entity.Ticket{
		CustomerID:  req.CustomerID,
		ScreeningID: req.ScreeningID,
		SeatLabel:   seat.String(),
		Status:      entity.TicketStatusActive,
		BookedBy:    actor,
	}

	err = s.repo.Tx.WithTx(ctx, func(ctx context.Context, q database.Querier) error {
		seating, err := s.repo.Screening.FindSeatingTx(ctx, q, req.ScreeningID)
		if err != nil {
			return err
		}
		if seating == nil {
			return fmt.Errorf("screening %d: %w", req.ScreeningID, repository.ErrScreeningNotFound)
		}

		grid := s.seatGrid(seating.Capacity)
		if !grid.Contains(seat) {
			return apperror.Validation(op, map[string]string{
				"SeatLabel": fmt.Sprintf("Seat %s is outside the room layout", seat),
			})
		}

		active, err := s.repo.Ticket.CountActiveTx(ctx, q, req.ScreeningID)
		if err != nil {
			return err
		}
		if active >= grid.Capacity {
			return fmt.Errorf("screening %d: %w", req.ScreeningID, repository.ErrScreeningSoldOut)
		}

		if err := s.repo.Ticket.CreateTx(ctx, q, ticket); err != nil {
			return err
		}

		ticketID := ticket.ID
		return s.repo.Audit.AppendTx(ctx, q, &entity.AuditEntry{
			Operation:   entity.AuditOperationBook,
			TicketID:    &ticketID,
			ScreeningID: ticket.ScreeningID,
			SeatLabel:   ticket.SeatLabel,
			Actor:       actor,
		})
	})
	if err != nil {
		s.log.Warn("Booking failed",
			zap.Error(err),
			zap.Int64("screening_id", req.ScreeningID),
			zap.String("seat", ticket.SeatLabel),
			zap.String("actor", actor),
		)
		return nil, fmt.Errorf("book seat %s: %w", ticket.SeatLabel, err)
	}

	if s.booked != nil {
		s.booked.Add(ctx, 1)
	}
	s.publish(ctx, event.TicketBooked, ticket, actor)

	s.log.Info("Ticket booked",
		zap.Int64("ticket_id", ticket.ID),
		zap.Int64("screening_id", ticket.ScreeningID),
		zap.String("seat", ticket.SeatLabel),
		zap.String("actor", actor),
	)

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

func (s *bookingService) Cancel(ctx context.Context, ticketID int64, actor string) (*response.TicketResponse, error) {
	actor = resolveActor(actor)

	var ticket *entity.Ticket
	err := s.repo.Tx.WithTx(ctx, func(ctx context.Context, q database.Querier) error {
		found, err := s.repo.Ticket.FindByIDForUpdateTx(ctx, q, ticketID)
		if err != nil {
			return err
		}
		if found == nil {
			return fmt.Errorf("ticket %d: %w", ticketID, repository.ErrTicketNotFound)
		}
		if found.Status == entity.TicketStatusCancelled {
			return fmt.Errorf("ticket %d: %w", ticketID, repository.ErrTicketAlreadyCancelled)
		}

		cancelledAt, err := s.repo.Ticket.MarkCancelledTx(ctx, q, ticketID, actor)
		if err != nil {
			return err
		}
		found.Status = entity.TicketStatusCancelled
		found.CancelledBy = &actor
		found.CancelledAt = &cancelledAt

		if err := s.repo.Audit.AppendTx(ctx, q, &entity.AuditEntry{
			Operation:   entity.AuditOperationCancel,
			TicketID:    &ticketID,
			ScreeningID: found.ScreeningID,
			SeatLabel:   found.SeatLabel,
			Actor:       actor,
		}); err != nil {
			return err
		}

		ticket = found
		return nil
	})
	if err != nil {
		s.log.Warn("Cancellation failed",
			zap.Error(err),
			zap.Int64("ticket_id", ticketID),
			zap.String("actor", actor),
		)
		return nil, fmt.Errorf("cancel ticket %d: %w", ticketID, err)
	}

	if s.cancelled != nil {
		s.cancelled.Add(ctx, 1)
	}
	s.publish(ctx, event.TicketCancelled, ticket, actor)

	s.log.Info("Ticket cancelled",
		zap.Int64("ticket_id", ticket.ID),
		zap.Int64("screening_id", ticket.ScreeningID),
		zap.String("seat", ticket.SeatLabel),
		zap.String("actor", actor),
	)

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

// publish runs after commit. A broker failure never fails the request.
func (s *bookingService) publish(ctx context.Context, eventType event.Type, ticket *entity.Ticket, actor string) {
	if s.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	err := s.publisher.Publish(ctx, event.TicketEvent{
		Type:        eventType,
		TicketID:    ticket.ID,
		ScreeningID: ticket.ScreeningID,
		CustomerID:  ticket.CustomerID,
		SeatLabel:   ticket.SeatLabel,
		Actor:       actor,
		OccurredAt:  time.Now().UTC(),
	})
	if err != nil {
		s.log.Warn("Failed to publish booking event",
			zap.Error(err),
			zap.String("type", string(eventType)),
			zap.Int64("ticket_id", ticket.ID),
		)
	}
}

func (s *bookingService) ListTickets(ctx context.Context, req *request.TicketListRequest) ([]response.TicketListItem, error) {
	const op = "booking.list"

	if err := utils.ValidationError(op, req); err != nil {
		return nil, err
	}

	filter, ok := entity.ParseStatusFilter(req.Status)
	if !ok {
		return nil, apperror.Validation(op, map[string]string{"Status": "Must be one of: all, active, cancelled"})
	}

	views, err := s.repo.Ticket.FindHistory(ctx, filter, req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}

	items := make([]response.TicketListItem, len(views))
	for i, view := range views {
		items[i] = response.TicketViewToListItem(view)
	}

	s.log.Debug("Tickets listed",
		zap.String("status", string(filter)),
		zap.Int("count", len(items)),
	)

	return items, nil
}

func (s *bookingService) GetTicket(ctx context.Context, ticketID int64) (*response.TicketResponse, error) {
	ticket, err := s.repo.Ticket.FindByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	if ticket == nil {
		return nil, fmt.Errorf("ticket %d: %w", ticketID, repository.ErrTicketNotFound)
	}

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

func (s *bookingService) ListScreeningTickets(ctx context.Context, screeningID int64) ([]response.TicketListItem, error) {
	if _, err := s.availability(ctx, screeningID); err != nil {
		return nil, err
	}

	views, err := s.repo.Ticket.FindByScreening(ctx, screeningID)
	if err != nil {
		return nil, fmt.Errorf("list screening tickets: %w", err)
	}

	items := make([]response.TicketListItem, len(views))
	for i, view := range views {
		items[i] = response.TicketViewToListItem(view)
	}

	return items, nil
}

func (s *bookingService) GetBookingAudit(ctx context.Context) ([]response.AuditEntryResponse, error) {
	limit := defaultAuditLimit
	if s.config != nil && s.config.Booking.AuditLimit > 0 {
		limit = s.config.Booking.AuditLimit
	}

	entries, err := s.repo.Audit.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("get booking audit: %w", err)
	}

	result := make([]response.AuditEntryResponse, len(entries))
	for i, entry := range entries {
		result[i] = response.AuditEntryToResponse(entry)
	}

	return result, nil
}
