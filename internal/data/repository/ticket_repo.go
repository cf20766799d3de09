package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketRepository interface {
	// Langkah booking di dalam transaksi
	CountActiveTx(ctx context.Context, q database.Querier, screeningID int64) (int, error)
	CreateTx(ctx context.Context, q database.Querier, ticket *entity.Ticket) error
	FindByIDForUpdateTx(ctx context.Context, q database.Querier, id int64) (*entity.Ticket, error)
	MarkCancelledTx(ctx context.Context, q database.Querier, id int64, actor string) (time.Time, error)

	FindByID(ctx context.Context, id int64) (*entity.Ticket, error)
	FindHistory(ctx context.Context, filter entity.StatusFilter, customerID *int64) ([]*entity.TicketView, error)
	FindByScreening(ctx context.Context, screeningID int64) ([]*entity.TicketView, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

var ticketCreateConstraints = map[string]error{
	"tickets_active_seat_key":   ErrSeatTaken,
	"tickets_customer_id_fkey":  ErrCustomerNotFound,
	"tickets_screening_id_fkey": ErrScreeningNotFound,
}

const ticketColumns = `
	SELECT id, customer_id, screening_id, seat_label, status,
	       booked_by, booked_at, cancelled_by, cancelled_at
	FROM tickets
`

const ticketViewColumns = `
	SELECT t.id, t.screening_id, t.customer_id, c.name, m.title,
	       s.screening_date, to_char(s.screening_time, 'HH24:MI'),
	       t.seat_label, t.status
	FROM tickets t
	JOIN screenings s ON s.id = t.screening_id
	JOIN movies m ON m.id = s.movie_id
	JOIN customers c ON c.id = t.customer_id
`

func scanTicket(row pgx.Row) (*entity.Ticket, error) {
	var ticket entity.Ticket
	err := row.Scan(
		&ticket.ID,
		&ticket.CustomerID,
		&ticket.ScreeningID,
		&ticket.SeatLabel,
		&ticket.Status,
		&ticket.BookedBy,
		&ticket.BookedAt,
		&ticket.CancelledBy,
		&ticket.CancelledAt,
	)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) CountActiveTx(ctx context.Context, q database.Querier, screeningID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM tickets
		WHERE screening_id = $1 AND status = 'active'
	`

	var count int
	if err := q.QueryRow(ctx, query, screeningID).Scan(&count); err != nil {
		r.log.Error("Failed to count active tickets",
			zap.Error(err),
			zap.Int64("screening_id", screeningID),
		)
		return 0, fmt.Errorf("count tickets of screening %d: %w", screeningID, database.Classify("ticket.count", err))
	}

	return count, nil
}

func (r *ticketRepository) CreateTx(ctx context.Context, q database.Querier, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (customer_id, screening_id, seat_label, status, booked_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, booked_at
	`

	err := q.QueryRow(ctx, query,
		ticket.CustomerID,
		ticket.ScreeningID,
		ticket.SeatLabel,
		ticket.Status,
		ticket.BookedBy,
	).Scan(&ticket.ID, &ticket.BookedAt)

	if err != nil {
		// Unique index tickets_active_seat_key menolak seat yang sudah dipesan
		translated := translate("ticket.create", err, ticketCreateConstraints)
		if errors.Is(translated, ErrSeatTaken) {
			r.log.Warn("Seat already taken",
				zap.Int64("screening_id", ticket.ScreeningID),
				zap.String("seat", ticket.SeatLabel),
			)
		} else {
			r.log.Error("Failed to create ticket",
				zap.Error(err),
				zap.Int64("screening_id", ticket.ScreeningID),
				zap.String("seat", ticket.SeatLabel),
			)
		}
		return fmt.Errorf("create ticket for seat %s: %w", ticket.SeatLabel, translated)
	}

	return nil
}

func (r *ticketRepository) FindByIDForUpdateTx(ctx context.Context, q database.Querier, id int64) (*entity.Ticket, error) {
	ticket, err := scanTicket(q.QueryRow(ctx, ticketColumns+` WHERE id = $1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock ticket",
			zap.Error(err),
			zap.Int64("ticket_id", id),
		)
		return nil, fmt.Errorf("lock ticket %d: %w", id, database.Classify("ticket.lock", err))
	}

	return ticket, nil
}

// MarkCancelledTx flips an active ticket to cancelled. A ticket that is
// not active yields ErrTicketAlreadyCancelled.
func (r *ticketRepository) MarkCancelledTx(ctx context.Context, q database.Querier, id int64, actor string) (time.Time, error) {
	query := `
		UPDATE tickets
		SET status = 'cancelled', cancelled_by = $2, cancelled_at = NOW()
		WHERE id = $1 AND status = 'active'
		RETURNING cancelled_at
	`

	var cancelledAt time.Time
	err := q.QueryRow(ctx, query, id, actor).Scan(&cancelledAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, fmt.Errorf("ticket %d: %w", id, ErrTicketAlreadyCancelled)
	}
	if err != nil {
		r.log.Error("Failed to cancel ticket",
			zap.Error(err),
			zap.Int64("ticket_id", id),
		)
		return time.Time{}, fmt.Errorf("cancel ticket %d: %w", id, database.Classify("ticket.cancel", err))
	}

	return cancelledAt, nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id int64) (*entity.Ticket, error) {
	ticket, err := scanTicket(r.db.QueryRow(ctx, ticketColumns+` WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by ID",
			zap.Error(err),
			zap.Int64("ticket_id", id),
		)
		return nil, fmt.Errorf("find ticket by ID %d: %w", id, err)
	}

	return ticket, nil
}

func scanTicketViews(rows pgx.Rows) ([]*entity.TicketView, error) {
	defer rows.Close()

	views := make([]*entity.TicketView, 0)
	for rows.Next() {
		var view entity.TicketView
		err := rows.Scan(
			&view.TicketID,
			&view.ScreeningID,
			&view.CustomerID,
			&view.CustomerName,
			&view.MovieTitle,
			&view.ScreeningDate,
			&view.StartTime,
			&view.SeatLabel,
			&view.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}

// FindHistory lists tickets of either status, newest screening first.
// A nil customerID lists every customer.
func (r *ticketRepository) FindHistory(ctx context.Context, filter entity.StatusFilter, customerID *int64) ([]*entity.TicketView, error) {
	query := ticketViewColumns + `
		WHERE ($1 = 'all' OR t.status = $1)
		  AND ($2::bigint IS NULL OR t.customer_id = $2)
		ORDER BY s.screening_date DESC, s.screening_time DESC, t.id DESC
	`

	rows, err := r.db.Query(ctx, query, string(filter), customerID)
	if err != nil {
		r.log.Error("Failed to find ticket history",
			zap.Error(err),
			zap.String("status", string(filter)),
		)
		return nil, fmt.Errorf("find ticket history: %w", err)
	}

	views, err := scanTicketViews(rows)
	if err != nil {
		r.log.Error("Failed to read ticket history", zap.Error(err))
		return nil, fmt.Errorf("read ticket history: %w", err)
	}

	return views, nil
}

func (r *ticketRepository) FindByScreening(ctx context.Context, screeningID int64) ([]*entity.TicketView, error) {
	query := ticketViewColumns + `
		WHERE t.screening_id = $1 AND t.status = 'active'
		ORDER BY t.id
	`

	rows, err := r.db.Query(ctx, query, screeningID)
	if err != nil {
		r.log.Error("Failed to find tickets by screening",
			zap.Error(err),
			zap.Int64("screening_id", screeningID),
		)
		return nil, fmt.Errorf("find tickets of screening %d: %w", screeningID, err)
	}

	views, err := scanTicketViews(rows)
	if err != nil {
		return nil, fmt.Errorf("read tickets of screening %d: %w", screeningID, err)
	}

	return views, nil
}
