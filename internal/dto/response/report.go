package response

type ScreeningRevenue struct {
	ScreeningID int64  `json:"screening_id"`
	MovieTitle  string `json:"movie_title"`
	RoomName    string `json:"room_name"`
	StartTime   string `json:"start_time"`
	TicketsSold int    `json:"tickets_sold"`
	Revenue     string `json:"revenue"`
}

// DailyRevenueResponse carries money as fixed two-decimal strings.
type DailyRevenueResponse struct {
	Date        string             `json:"date"`
	TicketPrice string             `json:"ticket_price"`
	TicketsSold int                `json:"tickets_sold"`
	Total       string             `json:"total"`
	Screenings  []ScreeningRevenue `json:"screenings"`
}

type DayRevenue struct {
	Date        string `json:"date"`
	Weekday     string `json:"weekday"`
	TicketsSold int    `json:"tickets_sold"`
	Revenue     string `json:"revenue"`
}

// WeeklyRevenueResponse covers the seven days ending on To, oldest first.
type WeeklyRevenueResponse struct {
	From        string       `json:"from"`
	To          string       `json:"to"`
	TicketPrice string       `json:"ticket_price"`
	TicketsSold int          `json:"tickets_sold"`
	Total       string       `json:"total"`
	Days        []DayRevenue `json:"days"`
}

type OccupancyResponse struct {
	ScreeningID   int64   `json:"screening_id"`
	MovieTitle    string  `json:"movie_title"`
	RoomName      string  `json:"room_name"`
	ScreeningDate string  `json:"screening_date"`
	StartTime     string  `json:"start_time"`
	Capacity      int     `json:"capacity"`
	TicketsSold   int     `json:"tickets_sold"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

type PopularMovieResponse struct {
	MovieID     int64  `json:"movie_id"`
	Title       string `json:"title"`
	TicketsSold int    `json:"tickets_sold"`
}
