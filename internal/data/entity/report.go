package entity

import "time"

// ScreeningSales counts active tickets of one screening.
type ScreeningSales struct {
	ScreeningID   int64     `db:"screening_id"`
	MovieTitle    string    `db:"movie_title"`
	RoomName      string    `db:"room_name"`
	ScreeningDate time.Time `db:"screening_date"`
	StartTime     string    `db:"screening_time"`
	Capacity      int       `db:"capacity"`
	TicketsSold   int       `db:"tickets_sold"`
}

// SalesFilter narrows the screenings a sales report covers. Nil ids and a
// zero limit do not filter.
type SalesFilter struct {
	RoomID  *int64
	MovieID *int64
	Limit   int
}

// DailySales counts active tickets over every screening of one date.
type DailySales struct {
	Date        time.Time `db:"screening_date"`
	TicketsSold int       `db:"tickets_sold"`
}

type MoviePopularity struct {
	MovieID     int64  `db:"movie_id"`
	Title       string `db:"title"`
	TicketsSold int    `db:"tickets_sold"`
}
