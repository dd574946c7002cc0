package bootstrap

import (
	"context"
	"log/slog"

	"apartment-booking/internal/infra/events"
	"apartment-booking/internal/pkg/config"
	"apartment-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) shared.EventPublisher {
	if !cfg.Kafka.Enabled() {
		slog.Info("kafka not configured, booking events are dropped")
		return events.NoopPublisher{}
	}

	publisher := events.NewKafkaPublisher(events.NewKafkaWriter(cfg.Kafka.Brokers), cfg.Kafka.Topic)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	slog.Info("publishing booking events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	return publisher
}
