package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"apartment-booking/internal/domain/coupon"
	"apartment-booking/internal/infra"
	"apartment-booking/internal/pkg/clock"
	"apartment-booking/internal/pkg/errs"
	"apartment-booking/internal/usecase/shared"
)

var (
	ErrEmptyCouponCode        = errs.New("coupon code is empty")
	ErrInvalidOrExpiredCoupon = errs.New("coupon code is invalid or expired")
	ErrCouponLookupFailed     = errs.New("coupon lookup failed")
)

type CouponValidator interface {
	// ValidateCoupon resolves to a coupon or exactly one of the typed coupon errors.
	ValidateCoupon(ctx context.Context, code string) (*coupon.Coupon, error)
}

type couponValidatorImpl struct {
	store shared.ReservationStore
	clock clock.Clock
}

func NewCouponValidator(store shared.ReservationStore, clock clock.Clock) CouponValidator {
	return &couponValidatorImpl{
		store: store,
		clock: clock,
	}
}

func (v *couponValidatorImpl) ValidateCoupon(ctx context.Context, code string) (c *coupon.Coupon, err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("recovered from panic during coupon lookup", "panic", r)
			c = nil
			err = errs.Mark(errs.New(fmt.Sprint(r)), ErrCouponLookupFailed)
		}
	}()

	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return nil, ErrEmptyCouponCode
	}
	if len(trimmed) > coupon.MaxCodeLength {
		return nil, ErrInvalidOrExpiredCoupon
	}

	now := v.clock.Now()
	snap, err := v.store.FindActiveCoupon(ctx, trimmed, now)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidOrExpiredCoupon
		}
		return nil, errs.Mark(err, ErrCouponLookupFailed)
	}
	if snap == nil {
		return nil, ErrInvalidOrExpiredCoupon
	}

	c, err = coupon.NewCoupon(snap.Code, snap.DiscountPercent, snap.IsActive, snap.ExpiresAt)
	if err != nil {
		slog.Warn("stored coupon failed validation", "code", snap.Code, "error", err)
		return nil, errs.Mark(err, ErrInvalidOrExpiredCoupon)
	}
	if err := c.ValidateUsage(now); err != nil {
		return nil, errs.Mark(err, ErrInvalidOrExpiredCoupon)
	}
	return c, nil
}
