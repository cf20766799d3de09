package response

import (
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/utils"
)

type FeedbackResponse struct {
	ID           int64     `json:"id"`
	CustomerID   int64     `json:"customer_id"`
	CustomerName string    `json:"customer_name,omitempty"`
	MovieID      int64     `json:"movie_id"`
	MovieTitle   string    `json:"movie_title,omitempty"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment,omitempty"`
	FeedbackDate string    `json:"feedback_date"`
	CreatedAt    time.Time `json:"created_at"`
}

func FeedbackToResponse(feedback *entity.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:           feedback.ID,
		CustomerID:   feedback.CustomerID,
		CustomerName: feedback.CustomerName,
		MovieID:      feedback.MovieID,
		MovieTitle:   feedback.MovieTitle,
		Rating:       feedback.Rating,
		Comment:      feedback.Comment,
		FeedbackDate: feedback.FeedbackDate.Format(utils.DateLayout),
		CreatedAt:    feedback.CreatedAt,
	}
}
