package request

type FeedbackRequest struct {
	CustomerID int64   `json:"customer_id" validate:"required,gte=1"`
	MovieID    int64   `json:"movie_id" validate:"required,gte=1"`
	Rating     int     `json:"rating" validate:"required,gte=1,lte=5"`
	Comment    *string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}

type FeedbackUpdateRequest struct {
	Rating  int     `json:"rating" validate:"required,gte=1,lte=5"`
	Comment *string `json:"comment,omitempty" validate:"omitempty,max=1000"`
}
