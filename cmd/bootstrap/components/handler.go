package components

import (
	"apartment-booking/internal/handler"
	"apartment-booking/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewApartmentHandler,
		api.NewCouponHandler,
		api.NewBookingSessionHandler,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
