package response

import (
	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/utils"
)

type ScreeningResponse struct {
	ID              int64   `json:"id"`
	MovieID         int64   `json:"movie_id"`
	MovieTitle      string  `json:"movie_title"`
	DurationMinutes int     `json:"duration_minutes"`
	RoomID          int64   `json:"room_id"`
	RoomName        string  `json:"room_name"`
	ScreeningDate   string  `json:"screening_date"`
	StartTime       string  `json:"start_time"`
	Capacity        int     `json:"capacity"`
	TicketsSold     int     `json:"tickets_sold"`
	OccupancyRate   float64 `json:"occupancy_rate"`
}

func ScreeningToResponse(screening *entity.ScreeningDetail) ScreeningResponse {
	return ScreeningResponse{
		ID:              screening.ID,
		MovieID:         screening.MovieID,
		MovieTitle:      screening.MovieTitle,
		DurationMinutes: screening.DurationMinutes,
		RoomID:          screening.RoomID,
		RoomName:        screening.RoomName,
		ScreeningDate:   screening.ScreeningDate.Format(utils.DateLayout),
		StartTime:       screening.StartTime,
		Capacity:        screening.Capacity,
		TicketsSold:     screening.TicketsSold,
		OccupancyRate:   screening.OccupancyRate,
	}
}
