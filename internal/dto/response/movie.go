package response

import (
	"time"

	"cinema-manager/internal/data/entity"
)

type MovieResponse struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	GenreID         *int64    `json:"genre_id,omitempty"`
	Genre           *string   `json:"genre,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type MovieRatingResponse struct {
	MovieID       int64   `json:"movie_id"`
	AverageRating float64 `json:"average_rating"`
	Count         int     `json:"count"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:              movie.ID,
		Title:           movie.Title,
		GenreID:         movie.GenreID,
		Genre:           movie.GenreName,
		DurationMinutes: movie.DurationMinutes,
		CreatedAt:       movie.CreatedAt,
		UpdatedAt:       movie.UpdatedAt,
	}
}

func MovieRatingToResponse(stats *entity.MovieRatingStats) MovieRatingResponse {
	return MovieRatingResponse{
		MovieID:       stats.MovieID,
		AverageRating: stats.AverageRating,
		Count:         stats.Count,
	}
}
