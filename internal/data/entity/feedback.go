package entity

import "time"

type Feedback struct {
	BaseSimple
	CustomerID   int64     `db:"customer_id"`
	MovieID      int64     `db:"movie_id"`
	Rating       int       `db:"rating"`
	Comment      *string   `db:"comment"`
	FeedbackDate time.Time `db:"feedback_date"`
	CustomerName string    `db:"customer_name"`
	MovieTitle   string    `db:"movie_title"`
}

type MovieRatingStats struct {
	MovieID       int64   `db:"movie_id"`
	AverageRating float64 `db:"average_rating"`
	Count         int     `db:"count"`
}
