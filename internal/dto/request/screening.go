package request

type ScreeningRequest struct {
	MovieID       int64  `json:"movie_id" validate:"required,gte=1"`
	RoomID        int64  `json:"room_id" validate:"required,gte=1"`
	ScreeningDate string `json:"screening_date" validate:"required,datetime=2006-01-02"`
	StartTime     string `json:"start_time" validate:"required,hhmm"`
}
