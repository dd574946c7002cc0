package pricing

import (
	"apartment-booking/internal/domain/coupon"

	"github.com/shopspring/decimal"
)

type Calculator interface {
	Quote(nights int, nightlyRate decimal.Decimal, c *coupon.Coupon) Quote
}

// Quote is the price summary shown next to the booking dialog.
type Quote struct {
	NightlyRate     decimal.Decimal
	Nights          int
	Subtotal        decimal.Decimal
	Discount        decimal.Decimal
	DiscountPercent *decimal.Decimal
	Total           decimal.Decimal
}

func (q Quote) TotalMinorUnits() int64 {
	return ToMinorUnits(q.Total)
}

func (q Quote) NightlyRateMinorUnits() int64 {
	return ToMinorUnits(q.NightlyRate)
}

type DefaultCalculator struct{}

func NewDefaultCalculator() *DefaultCalculator {
	return &DefaultCalculator{}
}

func (DefaultCalculator) Quote(nights int, nightlyRate decimal.Decimal, c *coupon.Coupon) Quote {
	q := Quote{
		NightlyRate: nightlyRate,
		Nights:      nights,
		Subtotal:    decimal.Zero,
		Discount:    decimal.Zero,
		Total:       decimal.Zero,
	}
	if c != nil {
		p := c.Discount().Decimal()
		q.DiscountPercent = &p
	}
	if nights <= 0 {
		q.Nights = 0
		return q
	}

	q.Subtotal = nightlyRate.Mul(decimal.NewFromInt(int64(nights)))
	q.Total = ComputeTotal(nights, nightlyRate, c)
	q.Discount = q.Subtotal.Sub(q.Total)
	return q
}

// ComputeTotal is nights * nightlyRate less the coupon percentage; zero nights price at zero.
func ComputeTotal(nights int, nightlyRate decimal.Decimal, c *coupon.Coupon) decimal.Decimal {
	if nights <= 0 {
		return decimal.Zero
	}
	total := nightlyRate.Mul(decimal.NewFromInt(int64(nights)))
	if c != nil {
		total = c.ApplyDiscount(total)
	}
	return total
}
