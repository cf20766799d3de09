package response

import (
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/utils"
)

type TicketResponse struct {
	ID          int64      `json:"id"`
	CustomerID  int64      `json:"customer_id"`
	ScreeningID int64      `json:"screening_id"`
	SeatLabel   string     `json:"seat_label"`
	Status      string     `json:"status"`
	BookedBy    string     `json:"booked_by"`
	BookedAt    time.Time  `json:"booked_at"`
	CancelledBy *string    `json:"cancelled_by,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
}

// TicketListItem is one row of the ticket history.
type TicketListItem struct {
	TicketID      int64  `json:"ticket_id"`
	MovieTitle    string `json:"movie_title"`
	ScreeningDate string `json:"screening_date"`
	StartTime     string `json:"start_time"`
	SeatLabel     string `json:"seat_label"`
	Status        string `json:"status"`
	CustomerID    int64  `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	ScreeningID   int64  `json:"screening_id"`
}

type SeatAvailabilityResponse struct {
	ScreeningID int64 `json:"screening_id"`
	Capacity    int   `json:"capacity"`
	Available   int   `json:"available"`
	Occupied    int   `json:"occupied"`
}

type SeatState string

const (
	SeatFree     SeatState = "free"
	SeatOccupied SeatState = "occupied"
	SeatSelected SeatState = "selected"
)

type SeatCell struct {
	Label string    `json:"label"`
	State SeatState `json:"state"`
}

type SeatRow struct {
	Row   string     `json:"row"`
	Seats []SeatCell `json:"seats"`
}

type SeatMapResponse struct {
	ScreeningID int64     `json:"screening_id"`
	Capacity    int       `json:"capacity"`
	Columns     int       `json:"columns"`
	Available   int       `json:"available"`
	SoldOut     bool      `json:"sold_out"`
	Selected    *string   `json:"selected,omitempty"`
	Rows        []SeatRow `json:"rows"`
}

type AuditEntryResponse struct {
	ID          int64     `json:"id"`
	Operation   string    `json:"operation"`
	TicketID    *int64    `json:"ticket_id,omitempty"`
	ScreeningID int64     `json:"screening_id"`
	SeatLabel   string    `json:"seat_label"`
	Actor       string    `json:"actor"`
	CreatedAt   time.Time `json:"created_at"`
}

// Helper converters
func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:          ticket.ID,
		CustomerID:  ticket.CustomerID,
		ScreeningID: ticket.ScreeningID,
		SeatLabel:   ticket.SeatLabel,
		Status:      ticket.Status.Label(),
		BookedBy:    ticket.BookedBy,
		BookedAt:    ticket.BookedAt,
		CancelledBy: ticket.CancelledBy,
		CancelledAt: ticket.CancelledAt,
	}
}

func TicketViewToListItem(view *entity.TicketView) TicketListItem {
	return TicketListItem{
		TicketID:      view.TicketID,
		MovieTitle:    view.MovieTitle,
		ScreeningDate: view.ScreeningDate.Format(utils.DateLayout),
		StartTime:     view.StartTime,
		SeatLabel:     view.SeatLabel,
		Status:        view.Status.Label(),
		CustomerID:    view.CustomerID,
		CustomerName:  view.CustomerName,
		ScreeningID:   view.ScreeningID,
	}
}

func AuditEntryToResponse(entry *entity.AuditEntry) AuditEntryResponse {
	return AuditEntryResponse{
		ID:          entry.ID,
		Operation:   string(entry.Operation),
		TicketID:    entry.TicketID,
		ScreeningID: entry.ScreeningID,
		SeatLabel:   entry.SeatLabel,
		Actor:       entry.Actor,
		CreatedAt:   entry.CreatedAt,
	}
}
