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

type ScreeningRepository interface {
	Create(ctx context.Context, screening *entity.Screening) error
	FindByID(ctx context.Context, id int64) (*entity.ScreeningDetail, error)
	FindAll(ctx context.Context) ([]*entity.ScreeningDetail, error)
	FindByDate(ctx context.Context, date time.Time) ([]*entity.ScreeningDetail, error)
	FindByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*entity.ScreeningDetail, error)
	Update(ctx context.Context, screening *entity.Screening) error
	Delete(ctx context.Context, id int64) error

	// Seat bookkeeping, dihitung ulang dari tiket aktif
	FindSeatingTx(ctx context.Context, q database.Querier, id int64) (*entity.Seating, error)
	GetAvailability(ctx context.Context, id int64) (*entity.SeatAvailability, error)
	FindOccupiedSeats(ctx context.Context, id int64) ([]string, error)
}

type screeningRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScreeningRepository(db database.PgxIface, log *zap.Logger) ScreeningRepository {
	return &screeningRepository{
		db:  db,
		log: log.With(zap.String("repository", "screening")),
	}
}

var (
	screeningWriteConstraints = map[string]error{
		"screenings_movie_id_fkey": ErrMovieNotFound,
		"screenings_room_id_fkey":  ErrRoomNotFound,
	}
	screeningDeleteConstraints = map[string]error{
		"tickets_screening_id_fkey": ErrStillReferenced,
	}
)

// occupancy counts active tickets only
const screeningDetailColumns = `
	SELECT s.id, s.movie_id, s.room_id, s.screening_date, to_char(s.screening_time, 'HH24:MI'),
	       s.created_at, s.updated_at,
	       m.title, m.duration_minutes, r.name, r.capacity,
	       COUNT(t.id) AS tickets_sold,
	       ROUND(COUNT(t.id) * 100.0 / r.capacity, 2)::float8 AS occupancy_rate
	FROM screenings s
	JOIN movies m ON m.id = s.movie_id
	JOIN rooms r ON r.id = s.room_id
	LEFT JOIN tickets t ON t.screening_id = s.id AND t.status = 'active'
`

const screeningDetailGrouping = `
	GROUP BY s.id, m.id, r.id
	ORDER BY s.screening_date, s.screening_time, s.id
`

func scanScreeningDetail(row pgx.Row) (*entity.ScreeningDetail, error) {
	var detail entity.ScreeningDetail
	err := row.Scan(
		&detail.ID,
		&detail.MovieID,
		&detail.RoomID,
		&detail.ScreeningDate,
		&detail.StartTime,
		&detail.CreatedAt,
		&detail.UpdatedAt,
		&detail.MovieTitle,
		&detail.DurationMinutes,
		&detail.RoomName,
		&detail.Capacity,
		&detail.TicketsSold,
		&detail.OccupancyRate,
	)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *screeningRepository) findDetails(ctx context.Context, where string, args ...any) ([]*entity.ScreeningDetail, error) {
	rows, err := r.db.Query(ctx, screeningDetailColumns+where+screeningDetailGrouping, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	screenings := make([]*entity.ScreeningDetail, 0)
	for rows.Next() {
		detail, err := scanScreeningDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan screening row: %w", err)
		}
		screenings = append(screenings, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return screenings, nil
}

func (r *screeningRepository) Create(ctx context.Context, screening *entity.Screening) error {
	query := `
		INSERT INTO screenings (movie_id, room_id, screening_date, screening_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4::text::time, $5, $6)
		RETURNING id
	`

	result, err := r.db.Run(ctx, query,
		screening.MovieID,
		screening.RoomID,
		screening.ScreeningDate,
		screening.StartTime,
		screening.CreatedAt,
		screening.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create screening",
			zap.Error(err),
			zap.Int64("movie_id", screening.MovieID),
			zap.Int64("room_id", screening.RoomID),
		)
		return fmt.Errorf("create screening: %w", translate("screening.create", err, screeningWriteConstraints))
	}

	screening.ID = result.LastInsertID
	return nil
}

func (r *screeningRepository) FindByID(ctx context.Context, id int64) (*entity.ScreeningDetail, error) {
	query := screeningDetailColumns + ` WHERE s.id = $1 GROUP BY s.id, m.id, r.id`

	detail, err := scanScreeningDetail(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find screening by ID",
			zap.Error(err),
			zap.Int64("screening_id", id),
		)
		return nil, fmt.Errorf("find screening by ID %d: %w", id, err)
	}

	return detail, nil
}

func (r *screeningRepository) FindAll(ctx context.Context) ([]*entity.ScreeningDetail, error) {
	screenings, err := r.findDetails(ctx, "")
	if err != nil {
		r.log.Error("Failed to find screenings", zap.Error(err))
		return nil, fmt.Errorf("find screenings: %w", err)
	}
	return screenings, nil
}

func (r *screeningRepository) FindByDate(ctx context.Context, date time.Time) ([]*entity.ScreeningDetail, error) {
	screenings, err := r.findDetails(ctx, ` WHERE s.screening_date = $1`, date)
	if err != nil {
		r.log.Error("Failed to find screenings by date",
			zap.Error(err),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("find screenings on %s: %w", date.Format("2006-01-02"), err)
	}
	return screenings, nil
}

func (r *screeningRepository) FindByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*entity.ScreeningDetail, error) {
	screenings, err := r.findDetails(ctx, ` WHERE s.room_id = $1 AND s.screening_date = $2`, roomID, date)
	if err != nil {
		r.log.Error("Failed to find screenings by room and date",
			zap.Error(err),
			zap.Int64("room_id", roomID),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("find screenings of room %d: %w", roomID, err)
	}
	return screenings, nil
}

func (r *screeningRepository) Update(ctx context.Context, screening *entity.Screening) error {
	query := `
		UPDATE screenings
		SET movie_id = $2, room_id = $3, screening_date = $4,
		    screening_time = $5::text::time, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Run(ctx, query,
		screening.ID,
		screening.MovieID,
		screening.RoomID,
		screening.ScreeningDate,
		screening.StartTime,
		screening.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update screening",
			zap.Error(err),
			zap.Int64("screening_id", screening.ID),
		)
		return fmt.Errorf("update screening %d: %w", screening.ID, translate("screening.update", err, screeningWriteConstraints))
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("screening %d: %w", screening.ID, ErrScreeningNotFound)
	}

	return nil
}

func (r *screeningRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Run(ctx, `DELETE FROM screenings WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete screening",
			zap.Error(err),
			zap.Int64("screening_id", id),
		)
		return fmt.Errorf("delete screening %d: %w", id, translate("screening.delete", err, screeningDeleteConstraints))
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("screening %d: %w", id, ErrScreeningNotFound)
	}

	r.log.Info("Screening deleted", zap.Int64("screening_id", id))
	return nil
}

// FindSeatingTx locks the screening and its room for the rest of q's
// transaction so capacity cannot change underneath a booking.
func (r *screeningRepository) FindSeatingTx(ctx context.Context, q database.Querier, id int64) (*entity.Seating, error) {
	query := `
		SELECT s.id, s.room_id, r.capacity
		FROM screenings s
		JOIN rooms r ON r.id = s.room_id
		WHERE s.id = $1
		FOR UPDATE OF s
	`

	var seating entity.Seating
	err := q.QueryRow(ctx, query, id).Scan(
		&seating.ScreeningID,
		&seating.RoomID,
		&seating.Capacity,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to lock screening seating",
			zap.Error(err),
			zap.Int64("screening_id", id),
		)
		return nil, fmt.Errorf("find seating of screening %d: %w", id, database.Classify("screening.seating", err))
	}

	return &seating, nil
}

func (r *screeningRepository) GetAvailability(ctx context.Context, id int64) (*entity.SeatAvailability, error) {
	query := `
		SELECT s.id, r.capacity, COUNT(t.id) AS active
		FROM screenings s
		JOIN rooms r ON r.id = s.room_id
		LEFT JOIN tickets t ON t.screening_id = s.id AND t.status = 'active'
		WHERE s.id = $1
		GROUP BY s.id, r.capacity
	`

	var availability entity.SeatAvailability
	err := r.db.QueryRow(ctx, query, id).Scan(
		&availability.ScreeningID,
		&availability.Capacity,
		&availability.Active,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to get seat availability",
			zap.Error(err),
			zap.Int64("screening_id", id),
		)
		return nil, fmt.Errorf("get availability of screening %d: %w", id, err)
	}

	return &availability, nil
}

func (r *screeningRepository) FindOccupiedSeats(ctx context.Context, id int64) ([]string, error) {
	query := `
		SELECT seat_label
		FROM tickets
		WHERE screening_id = $1 AND status = 'active'
	`

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to find occupied seats",
			zap.Error(err),
			zap.Int64("screening_id", id),
		)
		return nil, fmt.Errorf("find occupied seats of screening %d: %w", id, err)
	}

	seats, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("collect occupied seats: %w", err)
	}

	return seats, nil
}
