package request

// Capacity is further bounded by the configured seat layout.
type RoomRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Capacity int    `json:"capacity" validate:"required,gte=1"`
}
