package bootstrap

import (
	"apartment-booking/internal/infra/checkout"
	"apartment-booking/internal/pkg/clock"
	"apartment-booking/internal/pkg/config"
	"apartment-booking/internal/pkg/jwt"
	"apartment-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var CheckoutModule = fx.Module("checkout",
	fx.Provide(
		NewServiceTokenSigner,
		fx.Annotate(
			NewCheckoutClient,
			fx.As(new(shared.CheckoutHandoff)),
		),
	),
)

func NewServiceTokenSigner(cfg config.Config, clk clock.Clock) (*jwt.ServiceTokenSigner, error) {
	return jwt.NewServiceTokenSigner(cfg.Checkout.TokenSecret, cfg.Checkout.TokenDuration, clk)
}

func NewCheckoutClient(cfg config.Config, signer *jwt.ServiceTokenSigner) *checkout.Client {
	return checkout.NewClient(cfg.Checkout.URL, cfg.Checkout.Currency, cfg.Checkout.Timeout, signer)
}
