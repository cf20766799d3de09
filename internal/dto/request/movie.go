package request

type MovieRequest struct {
	Title           string `json:"title" validate:"required,min=1,max=200"`
	GenreID         *int64 `json:"genre_id,omitempty" validate:"omitempty,gte=1"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gte=1,lte=600"`
}
