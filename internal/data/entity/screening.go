package entity

import "time"

// Screening is one showing of a movie in a room. StartTime is the local
// time of day as "HH:MM".
type Screening struct {
	Base
	MovieID       int64     `db:"movie_id"`
	RoomID        int64     `db:"room_id"`
	ScreeningDate time.Time `db:"screening_date"`
	StartTime     string    `db:"screening_time"`
}

// ScreeningDetail joins a screening with its movie and room.
type ScreeningDetail struct {
	Screening
	MovieTitle      string  `db:"movie_title"`
	DurationMinutes int     `db:"duration_minutes"`
	RoomName        string  `db:"room_name"`
	Capacity        int     `db:"capacity"`
	TicketsSold     int     `db:"tickets_sold"`
	OccupancyRate   float64 `db:"occupancy_rate"`
}

// Seating is what the booking workflow needs to place a seat.
type Seating struct {
	ScreeningID int64 `db:"screening_id"`
	RoomID      int64 `db:"room_id"`
	Capacity    int   `db:"capacity"`
}

// SeatAvailability is the room capacity and the active ticket count of one
// screening.
type SeatAvailability struct {
	ScreeningID int64 `db:"screening_id"`
	Capacity    int   `db:"capacity"`
	Active      int   `db:"active"`
}
