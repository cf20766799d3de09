// Package event publishes booking lifecycle events to RabbitMQ.
package event

import (
	"context"
	"time"
)

type Type string

const (
	TicketBooked    Type = "ticket.booked"
	TicketCancelled Type = "ticket.cancelled"
)

// TicketEvent is the message body for both booking and cancellation.
type TicketEvent struct {
	Type        Type      `json:"type"`
	TicketID    int64     `json:"ticket_id"`
	ScreeningID int64     `json:"screening_id"`
	CustomerID  int64     `json:"customer_id"`
	SeatLabel   string    `json:"seat_label"`
	Actor       string    `json:"actor"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event TicketEvent) error
	Close() error
}

// NoopPublisher drops every event. It stands in when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, TicketEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
