package entity

type Genre struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type Movie struct {
	Base
	Title           string  `db:"title"`
	GenreID         *int64  `db:"genre_id"`
	GenreName       *string `db:"genre_name"`
	DurationMinutes int     `db:"duration_minutes"`
}
