package events

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Publisher delivers one payload to one named queue.
type Publisher interface {
	Publish(ctx context.Context, queue string, payload any) error
}

// NopPublisher drops every message. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, queue string, payload any) error {
	_ = ctx
	_ = queue
	_ = payload
	return nil
}

// Dispatcher fans an integration event out to its configured queues.
// Blank queue names are skipped; publish failures are logged and never
// propagate, the primary write has already committed.
type Dispatcher struct {
	pub Publisher
	log *zap.Logger
}

func NewDispatcher(pub Publisher, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		pub: pub,
		log: log.Named("events.dispatcher"),
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, event string, queues []string, payload any) {
	for _, queue := range queues {
		queue = strings.TrimSpace(queue)
		if queue == "" {
			continue
		}
		d.log.Info("dispatching event",
			zap.String("event", event),
			zap.String("queue", queue),
		)
		if err := d.pub.Publish(ctx, queue, payload); err != nil {
			d.log.Error("event dispatch failed",
				zap.String("event", event),
				zap.String("queue", queue),
				zap.Error(err),
			)
		}
	}
}
