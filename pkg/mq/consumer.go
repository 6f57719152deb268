package mq

import (
	"context"
	"errors"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Handle processes one delivery. Returning an error wrapped with Temporary
// requeues the message; any other error drops it.
type Handle func(ctx context.Context, body []byte) error

type Consumer interface {
	Consume(ctx context.Context, prefetch int, queue string, handler Handle) error
}

type consumer struct {
	ch *amqp.Channel
}

func (c *consumer) Consume(ctx context.Context, prefetch int, queue string, handler Handle) error {
	if prefetch < 1 {
		prefetch = 1
	}

	if err := c.ch.Qos(prefetch, 0, false); err != nil {
		return err
	}

	msgs, err := c.ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			_ = c.ch.Close()
			return ctx.Err()

		case msg, ok := <-msgs:
			if !ok {
				return nil
			}

			c.dispatch(ctx, msg, handler)
		}
	}
}

func (c *consumer) dispatch(ctx context.Context, msg amqp.Delivery, handler Handle) {
	if err := handler(ctx, msg.Body); err != nil {
		var retryable retryableError
		_ = msg.Nack(false, errors.As(err, &retryable))
		return
	}

	_ = msg.Ack(false)
}
