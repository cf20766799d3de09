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

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	FindByID(ctx context.Context, id int64) (*entity.Feedback, error)
	FindAll(ctx context.Context) ([]*entity.Feedback, error)
	FindByMovie(ctx context.Context, movieID int64) ([]*entity.Feedback, error)
	FindByCustomer(ctx context.Context, customerID int64) ([]*entity.Feedback, error)
	Update(ctx context.Context, feedback *entity.Feedback) error
	Delete(ctx context.Context, id int64) error
	GetMovieStats(ctx context.Context, movieID int64) (*entity.MovieRatingStats, error)
}

type feedbackRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFeedbackRepository(db database.PgxIface, log *zap.Logger) FeedbackRepository {
	return &feedbackRepository{
		db:  db,
		log: log.With(zap.String("repository", "feedback")),
	}
}

var feedbackConstraints = map[string]error{
	"feedback_customer_id_fkey": ErrCustomerNotFound,
	"feedback_movie_id_fkey":    ErrMovieNotFound,
}

const feedbackColumns = `
	SELECT f.id, f.customer_id, f.movie_id, f.rating, f.comment,
	       f.feedback_date, f.created_at, c.name, m.title
	FROM feedback f
	JOIN customers c ON c.id = f.customer_id
	JOIN movies m ON m.id = f.movie_id
`

func scanFeedback(row pgx.Row) (*entity.Feedback, error) {
	var feedback entity.Feedback
	err := row.Scan(
		&feedback.ID,
		&feedback.CustomerID,
		&feedback.MovieID,
		&feedback.Rating,
		&feedback.Comment,
		&feedback.FeedbackDate,
		&feedback.CreatedAt,
		&feedback.CustomerName,
		&feedback.MovieTitle,
	)
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	query := `
		INSERT INTO feedback (customer_id, movie_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, feedback_date, created_at
	`

	err := r.db.QueryRow(ctx, query,
		feedback.CustomerID,
		feedback.MovieID,
		feedback.Rating,
		feedback.Comment,
	).Scan(&feedback.ID, &feedback.FeedbackDate, &feedback.CreatedAt)

	if err != nil {
		r.log.Error("Failed to create feedback",
			zap.Error(err),
			zap.Int64("customer_id", feedback.CustomerID),
			zap.Int64("movie_id", feedback.MovieID),
		)
		return fmt.Errorf("create feedback: %w", translate("feedback.create", err, feedbackConstraints))
	}

	return nil
}

func (r *feedbackRepository) FindByID(ctx context.Context, id int64) (*entity.Feedback, error) {
	feedback, err := scanFeedback(r.db.QueryRow(ctx, feedbackColumns+` WHERE f.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find feedback by ID",
			zap.Error(err),
			zap.Int64("feedback_id", id),
		)
		return nil, fmt.Errorf("find feedback by ID %d: %w", id, err)
	}

	return feedback, nil
}

func (r *feedbackRepository) list(ctx context.Context, where string, args ...any) ([]*entity.Feedback, error) {
	rows, err := r.db.Query(ctx, feedbackColumns+where+` ORDER BY f.feedback_date DESC, f.id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*entity.Feedback, 0)
	for rows.Next() {
		feedback, err := scanFeedback(rows)
		if err != nil {
			return nil, fmt.Errorf("scan feedback row: %w", err)
		}
		list = append(list, feedback)
	}

	return list, rows.Err()
}

func (r *feedbackRepository) FindAll(ctx context.Context) ([]*entity.Feedback, error) {
	list, err := r.list(ctx, "")
	if err != nil {
		r.log.Error("Failed to find feedback", zap.Error(err))
		return nil, fmt.Errorf("find feedback: %w", err)
	}
	return list, nil
}

func (r *feedbackRepository) FindByMovie(ctx context.Context, movieID int64) ([]*entity.Feedback, error) {
	list, err := r.list(ctx, ` WHERE f.movie_id = $1`, movieID)
	if err != nil {
		r.log.Error("Failed to find feedback by movie",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("find feedback of movie %d: %w", movieID, err)
	}
	return list, nil
}

func (r *feedbackRepository) FindByCustomer(ctx context.Context, customerID int64) ([]*entity.Feedback, error) {
	list, err := r.list(ctx, ` WHERE f.customer_id = $1`, customerID)
	if err != nil {
		r.log.Error("Failed to find feedback by customer",
			zap.Error(err),
			zap.Int64("customer_id", customerID),
		)
		return nil, fmt.Errorf("find feedback of customer %d: %w", customerID, err)
	}
	return list, nil
}

func (r *feedbackRepository) Update(ctx context.Context, feedback *entity.Feedback) error {
	query := `
		UPDATE feedback
		SET rating = $2, comment = $3
		WHERE id = $1
	`

	result, err := r.db.Run(ctx, query, feedback.ID, feedback.Rating, feedback.Comment)
	if err != nil {
		r.log.Error("Failed to update feedback",
			zap.Error(err),
			zap.Int64("feedback_id", feedback.ID),
		)
		return fmt.Errorf("update feedback %d: %w", feedback.ID, err)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("feedback %d: %w", feedback.ID, ErrFeedbackNotFound)
	}

	return nil
}

func (r *feedbackRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Run(ctx, `DELETE FROM feedback WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete feedback",
			zap.Error(err),
			zap.Int64("feedback_id", id),
		)
		return fmt.Errorf("delete feedback %d: %w", id, err)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("feedback %d: %w", id, ErrFeedbackNotFound)
	}

	return nil
}

// GetMovieStats averages every rating of a movie. A movie without feedback
// has a zero average and count.
func (r *feedbackRepository) GetMovieStats(ctx context.Context, movieID int64) (*entity.MovieRatingStats, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0)::float8, COUNT(*)
		FROM feedback
		WHERE movie_id = $1
	`

	stats := entity.MovieRatingStats{MovieID: movieID}
	err := r.db.QueryRow(ctx, query, movieID).Scan(&stats.AverageRating, &stats.Count)
	if err != nil {
		r.log.Error("Failed to compute movie rating",
			zap.Error(err),
			zap.Int64("movie_id", movieID),
		)
		return nil, fmt.Errorf("compute rating of movie %d: %w", movieID, err)
	}

	return &stats, nil
}
