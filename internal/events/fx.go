package events

import (
	"context"

	"github.com/gasplexhq/gasplex/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("events",
	fx.Provide(newPublisher),
	fx.Provide(NewDispatcher),
)

func newPublisher(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (Publisher, error) {
	if cfg.AMQPURL == "" {
		log.Warn("no AMQP URL configured, event dispatch disabled")
		return NopPublisher{}, nil
	}

	pub, err := NewAMQPPublisher(cfg.AMQPURL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = ctx
			pub.Close()
			return nil
		},
	})

	return pub, nil
}
