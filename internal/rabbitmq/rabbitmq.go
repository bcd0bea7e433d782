package rabbitmq

import (
	"blog/internal/core/domain/logging"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const reconnectDelay = 3 * time.Second

// Connection is an amqp.Connection that redials after the broker drops it.
type Connection struct {
	url  string
	log  logging.Logger
	conn *amqp.Connection
	lock sync.RWMutex
}

func Dial(url string, log logging.Logger) (*Connection, error) {
	if log == nil {
		return nil, fmt.Errorf("log argument must not be nil")
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	connection := &Connection{url: url, log: log, conn: conn}
	go connection.watch()
	return connection, nil
}

func (c *Connection) watch() {
	for {
		reason, ok := <-c.current().NotifyClose(make(chan *amqp.Error, 1))
		if !ok {
			c.log.Info(context.Background(), "RabbitMQ connection closed.")
			return
		}
		c.log.Warning(context.Background(), "RabbitMQ connection lost.", logging.Entry("reason", reason.Error()))
		for {
			time.Sleep(reconnectDelay)
			conn, err := amqp.Dial(c.url)
			if err != nil {
				c.log.Error(context.Background(), "RabbitMQ reconnect failed.", logging.Entry("err", err))
				continue
			}
			c.lock.Lock()
			c.conn = conn
			c.lock.Unlock()
			c.log.Info(context.Background(), "RabbitMQ reconnect success.")
			break
		}
	}
}

func (c *Connection) current() *amqp.Connection {
	c.lock.RLock()
	defer c.lock.RUnlock()
	return c.conn
}

func (c *Connection) Close() error {
	return c.current().Close()
}

// Channel opens a channel that is reopened whenever it is closed by the broker.
func (c *Connection) Channel() (*Channel, error) {
	ch, err := c.current().Channel()
	if err != nil {
		return nil, err
	}
	channel := &Channel{ch: ch, log: c.log}
	go channel.watch(c)
	return channel, nil
}

type Channel struct {
	ch     *amqp.Channel
	closed int32
	log    logging.Logger
	lock   sync.RWMutex
}

func (ch *Channel) watch(c *Connection) {
	for {
		reason, ok := <-ch.current().NotifyClose(make(chan *amqp.Error, 1))
		if !ok || ch.IsClosed() {
			// Sets the closed flag when the connection itself went away.
			ch.Close()
			return
		}
		ch.log.Warning(context.Background(), "RabbitMQ channel closed.", logging.Entry("reason", reason.Error()))
		for {
			time.Sleep(reconnectDelay)
			newCh, err := c.current().Channel()
			if err != nil {
				ch.log.Error(context.Background(), "Channel recreate failed.", logging.Entry("err", err))
				continue
			}
			ch.lock.Lock()
			ch.ch = newCh
			ch.lock.Unlock()
			ch.log.Info(context.Background(), "Channel recreate success.")
			break
		}
	}
}

func (ch *Channel) current() *amqp.Channel {
	ch.lock.RLock()
	defer ch.lock.RUnlock()
	return ch.ch
}

func (ch *Channel) IsClosed() bool {
	return atomic.LoadInt32(&ch.closed) == 1
}

func (ch *Channel) Close() error {
	if !atomic.CompareAndSwapInt32(&ch.closed, 0, 1) {
		return amqp.ErrClosed
	}
	return ch.current().Close()
}

// DeclareQueue declares a durable queue bound to the default exchange.
func (ch *Channel) DeclareQueue(name string) error {
	_, err := ch.current().QueueDeclare(name, true, false, false, false, nil)
	return err
}

func (ch *Channel) PublishWithContext(
	ctx context.Context,
	exchange string,
	key string,
	mandatory bool,
	immediate bool,
	msg amqp.Publishing,
) error {
	return ch.current().PublishWithContext(ctx, exchange, key, mandatory, immediate, msg)
}

// Consume keeps delivering from the queue across channel reopenings until
// the channel is closed with Close.
func (ch *Channel) Consume(queue string, consumer string) (<-chan amqp.Delivery, error) {
	deliveries := make(chan amqp.Delivery)

	go func() {
		defer close(deliveries)
		for {
			d, err := ch.current().Consume(queue, consumer, false, false, false, false, nil)
			if err != nil {
				if ch.IsClosed() {
					return
				}
				ch.log.Error(context.Background(), "Consume failed.", logging.Entry("err", err))
				time.Sleep(reconnectDelay)
				continue
			}

			for msg := range d {
				deliveries <- msg
			}

			// The closed flag may be set shortly after the delivery channel ends.
			time.Sleep(reconnectDelay)
			if ch.IsClosed() {
				ch.log.Info(context.Background(), "Channel is closed, stop consuming.", logging.Entry("queue", queue))
				return
			}
		}
	}()

	return deliveries, nil
}
