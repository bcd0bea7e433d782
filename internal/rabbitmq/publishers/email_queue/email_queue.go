package emailqueue

import (
	"blog/internal/core/domain/email"
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/logging"
	"blog/internal/rabbitmq/schema"
	"context"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

type publisher interface {
	PublishWithContext(
		ctx context.Context,
		exchange string,
		key string,
		mandatory bool,
		immediate bool,
		msg amqp091.Publishing,
	) error
}

// RabbitMQ implements email.Sender by queueing messages for the mailer.
type RabbitMQ struct {
	log     logging.Logger
	channel publisher
	queue   string
	now     func() time.Time
}

func NewRabbitMQ(log logging.Logger, channel publisher, queue string, now func() time.Time) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic(e.NewEmptyArgumentError("queue"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &RabbitMQ{log: log, channel: channel, queue: queue, now: now}
}

func (s *RabbitMQ) Send(ctx context.Context, message email.Message) error {
	body, err := (&schema.Email{
		To:       string(message.To),
		Subject:  message.Subject,
		Body:     message.Body,
		QueuedAt: s.now(),
	}).Marshal()
	if err != nil {
		return err
	}

	err = s.channel.PublishWithContext(ctx, "", s.queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    s.now(),
		Body:         body,
	})
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("queue", s.queue))
		return err
	}
	s.log.Info(
		ctx,
		"Email has been queued.",
		logging.Entry("queue", s.queue),
		logging.Entry("subject", message.Subject),
	)
	return nil
}
