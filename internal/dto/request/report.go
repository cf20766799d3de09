package request

// OccupancyRequest filters the occupancy report. Empty fields do not filter.
type OccupancyRequest struct {
	RoomID  *int64 `json:"room_id,omitempty" validate:"omitempty,gte=1"`
	MovieID *int64 `json:"movie_id,omitempty" validate:"omitempty,gte=1"`
	Limit   int    `json:"limit,omitempty" validate:"omitempty,gte=1,lte=100"`
}
