//go:build unit || e2e

package builder

import (
	"time"

	"apartment-booking/internal/domain/coupon"
	"apartment-booking/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type CouponBuilder struct {
	Code            string
	DiscountPercent decimal.Decimal
	IsActive        bool
	ExpiresAt       time.Time
}

func NewCouponBuilder() *CouponBuilder {
	return &CouponBuilder{
		Code:            "SUMMER10",
		DiscountPercent: decimal.NewFromInt(10),
		IsActive:        true,
		ExpiresAt:       time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

// Build methods

func (b *CouponBuilder) BuildSnapshot() *shared.CouponSnapshot {
	return &shared.CouponSnapshot{
		Code:            b.Code,
		DiscountPercent: b.DiscountPercent,
		IsActive:        b.IsActive,
		ExpiresAt:       b.ExpiresAt,
	}
}

// BuildDomain panics on invalid input; builders are for tests only.
func (b *CouponBuilder) BuildDomain() *coupon.Coupon {
	c, err := coupon.NewCoupon(b.Code, b.DiscountPercent, b.IsActive, b.ExpiresAt)
	if err != nil {
		panic(err)
	}
	return c
}
