package event

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const defaultDialTimeout = 5 * time.Second

// AMQPPublisher sends events to a durable queue on the default exchange.
// The connection is dialled lazily and redialled after the broker drops it.
type AMQPPublisher struct {
	url         string
	queue       string
	dialTimeout time.Duration
	log         *zap.Logger

	mu   sync.Mutex
	conn *amqp.Connection
}

// NewPublisher returns a NoopPublisher when url is empty.
func NewPublisher(url, queue string, log *zap.Logger) Publisher {
	if url == "" {
		log.Info("RabbitMQ URL not set, booking events are disabled")
		return NoopPublisher{}
	}
	return &AMQPPublisher{
		url:         url,
		queue:       queue,
		dialTimeout: defaultDialTimeout,
		log:         log.With(zap.String("component", "event_publisher")),
	}
}

// connection dials within dialTimeout or the ctx deadline, whichever is
// sooner. The handshake shares the same bound.
func (p *AMQPPublisher) connection(ctx context.Context) (*amqp.Connection, error) {
	if p.conn != nil && !p.conn.IsClosed() {
		return p.conn, nil
	}

	timeout := p.dialTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = min(timeout, time.Until(deadline))
	}
	if timeout <= 0 {
		return nil, fmt.Errorf("dial broker: %w", context.DeadlineExceeded)
	}

	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(timeout),
	})
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}
	p.conn = conn
	return conn, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event TicketEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	conn, err := p.connection(ctx)
	if err != nil {
		p.log.Warn("Broker unavailable", zap.Error(err))
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare queue %s: %w", p.queue, err)
	}

	err = ch.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Type:         string(event.Type),
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish %s event: %w", event.Type, err)
	}

	p.log.Debug("Event published",
		zap.String("type", string(event.Type)),
		zap.Int64("ticket_id", event.TicketID),
	)
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	return p.conn.Close()
}
