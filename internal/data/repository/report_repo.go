package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReportRepository interface {
	SalesByDate(ctx context.Context, date time.Time) ([]*entity.ScreeningSales, error)
	SalesRecent(ctx context.Context, filter entity.SalesFilter) ([]*entity.ScreeningSales, error)
	DailySalesBetween(ctx context.Context, from, to time.Time) ([]*entity.DailySales, error)
	PopularMovies(ctx context.Context, limit int) ([]*entity.MoviePopularity, error)
}

type reportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReportRepository(db database.PgxIface, log *zap.Logger) ReportRepository {
	return &reportRepository{
		db:  db,
		log: log.With(zap.String("repository", "report")),
	}
}

const salesColumns = `
	SELECT s.id AS screening_id, m.title AS movie_title, r.name AS room_name,
	       s.screening_date, to_char(s.screening_time, 'HH24:MI') AS screening_time,
	       r.capacity, COUNT(t.id)::int AS tickets_sold
	FROM screenings s
	JOIN movies m ON m.id = s.movie_id
	JOIN rooms r ON r.id = s.room_id
	LEFT JOIN tickets t ON t.screening_id = s.id AND t.status = 'active'
`

func (r *reportRepository) sales(ctx context.Context, where, order string, args ...any) ([]*entity.ScreeningSales, error) {
	query := salesColumns + where + `
		GROUP BY s.id, m.id, r.id
	` + order

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.ScreeningSales])
}

// SalesByDate counts active tickets per screening on one calendar date.
func (r *reportRepository) SalesByDate(ctx context.Context, date time.Time) ([]*entity.ScreeningSales, error) {
	sales, err := r.sales(ctx, ` WHERE s.screening_date = $1`,
		` ORDER BY s.screening_date, s.screening_time, s.id`, date)
	if err != nil {
		r.log.Error("Failed to report sales by date",
			zap.Error(err),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("report sales on %s: %w", date.Format(time.DateOnly), err)
	}
	return sales, nil
}

// SalesRecent lists screenings newest first, narrowed by filter.
func (r *reportRepository) SalesRecent(ctx context.Context, filter entity.SalesFilter) ([]*entity.ScreeningSales, error) {
	var (
		conditions []string
		args       []any
	)
	if filter.RoomID != nil {
		args = append(args, *filter.RoomID)
		conditions = append(conditions, fmt.Sprintf("s.room_id = $%d", len(args)))
	}
	if filter.MovieID != nil {
		args = append(args, *filter.MovieID)
		conditions = append(conditions, fmt.Sprintf("s.movie_id = $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	order := ` ORDER BY s.screening_date DESC, s.screening_time DESC, s.id DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		order += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	sales, err := r.sales(ctx, where, order, args...)
	if err != nil {
		r.log.Error("Failed to report sales", zap.Error(err))
		return nil, fmt.Errorf("report sales: %w", err)
	}
	return sales, nil
}

// DailySalesBetween counts active tickets per date in [from, to]. Dates
// without sales are absent.
func (r *reportRepository) DailySalesBetween(ctx context.Context, from, to time.Time) ([]*entity.DailySales, error) {
	query := `
		SELECT s.screening_date, COUNT(t.id)::int AS tickets_sold
		FROM screenings s
		JOIN tickets t ON t.screening_id = s.id AND t.status = 'active'
		WHERE s.screening_date BETWEEN $1 AND $2
		GROUP BY s.screening_date
		ORDER BY s.screening_date
	`

	rows, err := r.db.Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to report daily sales", zap.Error(err))
		return nil, fmt.Errorf("report daily sales: %w", err)
	}

	days, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.DailySales])
	if err != nil {
		r.log.Error("Failed to read daily sales", zap.Error(err))
		return nil, fmt.Errorf("read daily sales: %w", err)
	}

	return days, nil
}

// PopularMovies ranks movies by active tickets sold. Movies without sales
// are left out.
func (r *reportRepository) PopularMovies(ctx context.Context, limit int) ([]*entity.MoviePopularity, error) {
	query := `
		SELECT m.id AS movie_id, m.title, COUNT(t.id)::int AS tickets_sold
		FROM movies m
		JOIN screenings s ON s.movie_id = m.id
		JOIN tickets t ON t.screening_id = s.id AND t.status = 'active'
		GROUP BY m.id
		ORDER BY tickets_sold DESC, m.title
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to report popular movies", zap.Error(err))
		return nil, fmt.Errorf("report popular movies: %w", err)
	}

	movies, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[entity.MoviePopularity])
	if err != nil {
		r.log.Error("Failed to read popular movies", zap.Error(err))
		return nil, fmt.Errorf("read popular movies: %w", err)
	}

	return movies, nil
}
