package coupon

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrCouponExpired  = errors.New("coupon has expired")
	ErrCouponInactive = errors.New("coupon is not active")
)

type Coupon struct {
	code      Code
	discount  Percent
	isActive  bool
	expiresAt time.Time
}

func NewCoupon(code string, discountPercent decimal.Decimal, isActive bool, expiresAt time.Time) (*Coupon, error) {
	couponCode, err := NewCouponCode(code)
	if err != nil {
		return nil, err
	}

	discount, err := NewPercent(discountPercent)
	if err != nil {
		return nil, err
	}

	return &Coupon{
		code:      couponCode,
		discount:  discount,
		isActive:  isActive,
		expiresAt: expiresAt,
	}, nil
}

// IsUsableAt requires the coupon to be active and to expire strictly after t.
func (c *Coupon) IsUsableAt(t time.Time) bool {
	return c.isActive && c.expiresAt.After(t)
}

func (c *Coupon) ValidateUsage(t time.Time) error {
	if !c.isActive {
		return ErrCouponInactive
	}
	if !c.expiresAt.After(t) {
		return ErrCouponExpired
	}
	return nil
}

// ApplyDiscount returns base minus this coupon's percentage of it.
func (c *Coupon) ApplyDiscount(base decimal.Decimal) decimal.Decimal {
	return base.Sub(c.discount.Of(base))
}

func (c *Coupon) Code() Code           { return c.code }
func (c *Coupon) Discount() Percent    { return c.discount }
func (c *Coupon) IsActive() bool       { return c.isActive }
func (c *Coupon) ExpiresAt() time.Time { return c.expiresAt }
