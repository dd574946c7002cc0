//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"apartment-booking/internal/domain/coupon"
	"apartment-booking/internal/domain/pricing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCoupon(t *testing.T, percent string) *coupon.Coupon {
	t.Helper()
	c, err := coupon.NewCoupon("CODE", decimal.RequireFromString(percent), true, time.Now().Add(time.Hour))
	require.NoError(t, err)
	return c
}

func TestComputeTotal(t *testing.T) {
	rate := decimal.NewFromInt(100)

	t.Run("three nights with ten percent off", func(t *testing.T) {
		total := pricing.ComputeTotal(3, rate, newCoupon(t, "10"))
		assert.Equal(t, "270", total.String())
		assert.Equal(t, int64(27000), pricing.ToMinorUnits(total))
	})

	t.Run("no coupon", func(t *testing.T) {
		assert.Equal(t, "300", pricing.ComputeTotal(3, rate, nil).String())
	})

	t.Run("zero nights is zero regardless of coupon", func(t *testing.T) {
		assert.True(t, pricing.ComputeTotal(0, rate, nil).IsZero())
		assert.True(t, pricing.ComputeTotal(0, rate, newCoupon(t, "50")).IsZero())
		assert.True(t, pricing.ComputeTotal(-2, rate, newCoupon(t, "0")).IsZero())
	})

	t.Run("hundred percent is free", func(t *testing.T) {
		assert.True(t, pricing.ComputeTotal(4, rate, newCoupon(t, "100")).IsZero())
	})
}

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		amount string
		want   int64
	}{
		{amount: "0", want: 0},
		{amount: "270", want: 27000},
		{amount: "12.344", want: 1234},
		{amount: "12.345", want: 1235},
		{amount: "12.3449", want: 1234},
		{amount: "0.005", want: 1},
		{amount: "99.995", want: 10000},
	}
	for _, tc := range cases {
		t.Run(tc.amount, func(t *testing.T) {
			assert.Equal(t, tc.want, pricing.ToMinorUnits(decimal.RequireFromString(tc.amount)))
		})
	}
}

func TestPriceMonotonicity(t *testing.T) {
	rate := decimal.RequireFromString("87.35")

	t.Run("non-increasing in discount percent", func(t *testing.T) {
		prev := pricing.ComputeTotal(5, rate, nil)
		for p := 0; p <= 100; p += 5 {
			cur := pricing.ComputeTotal(5, rate, newCoupon(t, decimal.NewFromInt(int64(p)).String()))
			assert.True(t, cur.LessThanOrEqual(prev), "percent %d", p)
			prev = cur
		}
	})

	t.Run("non-decreasing in nights", func(t *testing.T) {
		c := newCoupon(t, "15")
		prev := pricing.ComputeTotal(0, rate, c)
		for n := 1; n <= 30; n++ {
			cur := pricing.ComputeTotal(n, rate, c)
			assert.True(t, cur.GreaterThanOrEqual(prev), "nights %d", n)
			prev = cur
		}
	})
}

func TestCouponIdempotence(t *testing.T) {
	rate := decimal.NewFromInt(100)
	c := newCoupon(t, "10")

	first := pricing.ComputeTotal(3, rate, c)
	second := pricing.ComputeTotal(3, rate, c)
	assert.True(t, first.Equal(second))
	assert.Equal(t, "270", second.String())
}

func TestDefaultCalculatorQuote(t *testing.T) {
	calc := pricing.NewDefaultCalculator()

	t.Run("breakdown", func(t *testing.T) {
		q := calc.Quote(3, decimal.NewFromInt(100), newCoupon(t, "10"))
		assert.Equal(t, 3, q.Nights)
		assert.Equal(t, "300", q.Subtotal.String())
		assert.Equal(t, "30", q.Discount.String())
		assert.Equal(t, "270", q.Total.String())
		require.NotNil(t, q.DiscountPercent)
		assert.Equal(t, "10", q.DiscountPercent.String())
		assert.Equal(t, int64(27000), q.TotalMinorUnits())
		assert.Equal(t, int64(10000), q.NightlyRateMinorUnits())
	})

	t.Run("incomplete selection", func(t *testing.T) {
		q := calc.Quote(0, decimal.NewFromInt(100), newCoupon(t, "10"))
		assert.Zero(t, q.Nights)
		assert.True(t, q.Total.IsZero())
		assert.True(t, q.Discount.IsZero())
	})
}
