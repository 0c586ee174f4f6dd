// Package queue publishes domain events to a RabbitMQ topic exchange.
// Publishing is best-effort: a broker failure is logged and never propagated
// into the request path.
package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Godkunn/Ocean-Watch/internal/config"
	"github.com/Godkunn/Ocean-Watch/pkg/e"
)

type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
	logger   *slog.Logger
}

func NewPublisher(cfg *config.Config, logger *slog.Logger) (*Publisher, error) {
	conn, err := amqp.Dial(cfg.Events.URL)
	if err != nil {
		return nil, e.Wrap("queue.NewPublisher.Dial", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, e.Wrap("queue.NewPublisher.Channel", err)
	}

	err = ch.ExchangeDeclare(cfg.Events.Exchange, "topic", true, false, false, false, nil)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, e.Wrap("queue.NewPublisher.ExchangeDeclare", err)
	}
	logger.Info("Connected to RabbitMQ", slog.String("exchange", cfg.Events.Exchange))

	return &Publisher{
		conn:     conn,
		channel:  ch,
		exchange: cfg.Events.Exchange,
		logger:   logger,
	}, nil
}

// Publish sends the event under the given routing key, e.g. "report.created".
func (p *Publisher) Publish(ctx context.Context, routingKey string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return e.Wrap("queue.Publish.Marshal", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	err = p.channel.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   time.Now().UTC(),
		Body:        body,
	})
	if err != nil {
		return e.Wrap("queue.Publish", err)
	}

	return nil
}

func (p *Publisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.logger.Warn("amqp channel close failed", slog.Any("error", err))
	}
	return p.conn.Close()
}
