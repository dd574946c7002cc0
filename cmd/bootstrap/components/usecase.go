package components

import (
	"apartment-booking/internal/domain/pricing"
	"apartment-booking/internal/pkg/clock"
	"apartment-booking/internal/pkg/config"
	"apartment-booking/internal/usecase/commands"
	"apartment-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewDefaultCalculator,
		fx.As(new(pricing.Calculator)),
	),
	func(cfg config.Config) commands.BookingSessionOptions {
		return commands.BookingSessionOptions{
			RecheckOnSubmit: cfg.Session.RecheckOnSubmit,
			MaxStayNights:   cfg.Session.MaxStayNights,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCouponValidator,
		commands.NewBookingSessionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewApartmentQueries,
		queries.NewBookingSessionQueries,
	),
)
