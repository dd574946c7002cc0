package pricing

import "github.com/shopspring/decimal"

// Minor units per major unit is 10^CurrencyExponent.
const CurrencyExponent = 2

// ToMinorUnits converts a currency amount to integer minor units, rounding half up.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(CurrencyExponent).Round(0).IntPart()
}
