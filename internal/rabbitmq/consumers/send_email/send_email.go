package sendemail

import (
	"blog/internal/core/domain/common"
	"blog/internal/core/domain/email"
	e "blog/internal/core/domain/errors"
	"blog/internal/core/domain/logging"
	"blog/internal/core/services"
	sendemail "blog/internal/core/services/send_email"
	"blog/internal/rabbitmq"
	"blog/internal/rabbitmq/schema"
	"context"

	"github.com/rabbitmq/amqp091-go"
)

type Consumer struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
	service services.Service[sendemail.Input, sendemail.Result]
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	service services.Service[sendemail.Input, sendemail.Result],
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic(e.NewEmptyArgumentError("queue"))
	}
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Consumer{log: log, channel: channel, queue: queue, service: service}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "")
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			c.Handle(context.Background(), delivery)
		}
	}()
	return nil
}

// Handle delivers one queued email. A failed delivery is requeued once;
// malformed messages and repeated failures are dropped.
func (c *Consumer) Handle(ctx context.Context, delivery amqp091.Delivery) {
	m := &schema.Email{}
	if err := m.Unmarshal(delivery.Body); err != nil {
		c.log.Error(ctx, "Could not unmarshal email.", logging.Entry("err", err))
		c.reject(ctx, delivery, false)
		return
	}

	_, err := c.service.Run(ctx, sendemail.Input{Message: email.Message{
		To:      common.NewEmail(m.To),
		Subject: m.Subject,
		Body:    m.Body,
	}})
	if err != nil {
		c.log.Error(
			ctx,
			"Could not send email, service returned an error.",
			logging.Entry("subject", m.Subject),
			logging.Entry("redelivered", delivery.Redelivered),
			logging.Entry("err", err),
		)
		c.reject(ctx, delivery, !delivery.Redelivered)
		return
	}
	c.ack(ctx, delivery)
}

func (c *Consumer) ack(ctx context.Context, delivery amqp091.Delivery) {
	if err := delivery.Ack(false); err != nil {
		c.log.Error(ctx, "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}

func (c *Consumer) reject(ctx context.Context, delivery amqp091.Delivery, requeue bool) {
	if err := delivery.Nack(false, requeue); err != nil {
		c.log.Error(ctx, "Could not NACK AMQP message.", logging.Entry("err", err))
	}
}
