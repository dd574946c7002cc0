package coupon

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCouponCode        = errors.New("coupon code is empty")
	ErrCouponCodeTooLong      = errors.New("coupon code is too long")
	ErrInvalidDiscountPercent = errors.New("percentage discount must be between 0 and 100")
)

const MaxCodeLength = 64

var hundred = decimal.NewFromInt(100)

// Code is matched exactly against the store after trimming surrounding whitespace.
type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Code(""), ErrEmptyCouponCode
	}
	if len(code) > MaxCodeLength {
		return Code(""), ErrCouponCodeTooLong
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type Percent struct {
	value decimal.Decimal
}

func NewPercent(value decimal.Decimal) (Percent, error) {
	if value.IsNegative() || value.GreaterThan(hundred) {
		return Percent{}, ErrInvalidDiscountPercent
	}
	return Percent{value: value}, nil
}

func (p Percent) Decimal() decimal.Decimal {
	return p.value
}

func (p Percent) String() string {
	return p.value.String()
}

// Of returns the discount amount this percentage takes off base.
func (p Percent) Of(base decimal.Decimal) decimal.Decimal {
	return base.Mul(p.value).Div(hundred)
}
