package entity

import (
	"strings"
	"time"
)

type TicketStatus string

const (
	TicketStatusActive    TicketStatus = "active"
	TicketStatusCancelled TicketStatus = "cancelled"
)

// Label is the display form used in ticket listings.
func (s TicketStatus) Label() string {
	switch s {
	case TicketStatusActive:
		return "Active"
	case TicketStatusCancelled:
		return "Cancelled"
	default:
		return string(s)
	}
}

// StatusFilter selects which tickets a listing returns.
type StatusFilter string

const (
	StatusFilterAll       StatusFilter = "all"
	StatusFilterActive    StatusFilter = "active"
	StatusFilterCancelled StatusFilter = "cancelled"
)

// ParseStatusFilter is case-insensitive; empty means all.
func ParseStatusFilter(s string) (StatusFilter, bool) {
	switch StatusFilter(strings.ToLower(strings.TrimSpace(s))) {
	case "", StatusFilterAll:
		return StatusFilterAll, true
	case StatusFilterActive:
		return StatusFilterActive, true
	case StatusFilterCancelled:
		return StatusFilterCancelled, true
	default:
		return "", false
	}
}

type Ticket struct {
	ID          int64        `db:"id"`
	CustomerID  int64        `db:"customer_id"`
	ScreeningID int64        `db:"screening_id"`
	SeatLabel   string       `db:"seat_label"`
	Status      TicketStatus `db:"status"`
	BookedBy    string       `db:"booked_by"`
	BookedAt    time.Time    `db:"booked_at"`
	CancelledBy *string      `db:"cancelled_by"`
	CancelledAt *time.Time   `db:"cancelled_at"`
}

// TicketView is a row of the ticket history listing.
type TicketView struct {
	TicketID      int64        `db:"ticket_id"`
	ScreeningID   int64        `db:"screening_id"`
	CustomerID    int64        `db:"customer_id"`
	CustomerName  string       `db:"customer_name"`
	MovieTitle    string       `db:"movie_title"`
	ScreeningDate time.Time    `db:"screening_date"`
	StartTime     string       `db:"screening_time"`
	SeatLabel     string       `db:"seat_label"`
	Status        TicketStatus `db:"status"`
}
