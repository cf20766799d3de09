package entity

import "time"

type AuditOperation string

const (
	AuditOperationBook   AuditOperation = "book"
	AuditOperationCancel AuditOperation = "cancel"
)

// AuditEntry is an append-only record of a ticket mutation.
type AuditEntry struct {
	ID          int64          `db:"id"`
	Operation   AuditOperation `db:"operation"`
	TicketID    *int64         `db:"ticket_id"`
	ScreeningID int64          `db:"screening_id"`
	SeatLabel   string         `db:"seat_label"`
	Actor       string         `db:"actor"`
	CreatedAt   time.Time      `db:"created_at"`
}
