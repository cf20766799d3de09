package request

type BookTicketRequest struct {
	CustomerID  int64  `json:"customer_id" validate:"required,gte=1"`
	ScreeningID int64  `json:"screening_id" validate:"required,gte=1"`
	SeatLabel   string `json:"seat_label" validate:"required,seat_label"`
}

type TicketListRequest struct {
	Status     string `json:"status" validate:"ticket_status"`
	CustomerID *int64 `json:"customer_id,omitempty" validate:"omitempty,gte=1"`
}
