package repository

import (
	"context"
	"errors"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MovieRepository interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int64) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)
	Update(ctx context.Context, movie *entity.Movie) error
	Delete(ctx context.Context, id int64) error
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

var (
	movieWriteConstraints = map[string]error{
		"movies_genre_id_fkey": ErrGenreNotFound,
	}
	movieDeleteConstraints = map[string]error{
		"screenings_movie_id_fkey": ErrStillReferenced,
	}
)

const movieColumns = `
	SELECT m.id, m.title, m.genre_id, g.name, m.duration_minutes, m.created_at, m.updated_at
	FROM movies m
	LEFT JOIN genres g ON g.id = m.genre_id
`

func scanMovie(row pgx.Row) (*entity.Movie, error) {
	var movie entity.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.GenreID,
		&movie.GenreName,
		&movie.DurationMinutes,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	query := `
		INSERT INTO movies (title, genre_id, duration_minutes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	result, err := r.db.Run(ctx, query,
		movie.Title,
		movie.GenreID,
		movie.DurationMinutes,
		movie.CreatedAt,
		movie.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create movie",
			zap.Error(err),
			zap.String("title", movie.Title),
		)
		return fmt.Errorf("create movie %s: %w", movie.Title, translate("movie.create", err, movieWriteConstraints))
	}

	movie.ID = result.LastInsertID
	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int64) (*entity.Movie, error) {
	movie, err := scanMovie(r.db.QueryRow(ctx, movieColumns+` WHERE m.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return nil, fmt.Errorf("find movie by ID %d: %w", id, err)
	}

	return movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	rows, err := r.db.Query(ctx, movieColumns+` ORDER BY m.title, m.id`)
	if err != nil {
		r.log.Error("Failed to find movies", zap.Error(err))
		return nil, fmt.Errorf("find movies: %w", err)
	}
	defer rows.Close()

	movies := make([]*entity.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			r.log.Error("Failed to scan movie row", zap.Error(err))
			return nil, fmt.Errorf("scan movie row: %w", err)
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movies: %w", err)
	}

	return movies, nil
}

func (r *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	query := `
		UPDATE movies
		SET title = $2, genre_id = $3, duration_minutes = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Run(ctx, query,
		movie.ID,
		movie.Title,
		movie.GenreID,
		movie.DurationMinutes,
		movie.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update movie",
			zap.Error(err),
			zap.Int64("movie_id", movie.ID),
		)
		return fmt.Errorf("update movie %d: %w", movie.ID, translate("movie.update", err, movieWriteConstraints))
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("movie %d: %w", movie.ID, ErrMovieNotFound)
	}

	return nil
}

func (r *movieRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Run(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete movie",
			zap.Error(err),
			zap.Int64("movie_id", id),
		)
		return fmt.Errorf("delete movie %d: %w", id, translate("movie.delete", err, movieDeleteConstraints))
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("movie %d: %w", id, ErrMovieNotFound)
	}

	r.log.Info("Movie deleted", zap.Int64("movie_id", id))
	return nil
}
