package bootstrap

import (
	"apartment-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	EventsModule,
	CheckoutModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
