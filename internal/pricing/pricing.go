// Package pricing holds the pure price and rating arithmetic. All
// calculations run on decimals so the 2-decimal round-half-up behavior
// expected for displayed prices is exact.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// NoDiscount is the sentinel discount value meaning "no reduction".
const NoDiscount = "0"

// ApplyDiscount derives the effective price from a base price and a
// textual discount percentage: base * (100 - percent) / 100, rounded
// half-up to 2 decimal places. The sentinel "0" is an identity.
func ApplyDiscount(base decimal.Decimal, percent string) (decimal.Decimal, error) {
	if percent == NoDiscount {
		return base, nil
	}
	p, err := parsePercent(percent)
	if err != nil {
		return decimal.Zero, err
	}
	return base.Mul(hundred.Sub(p)).Div(hundred).Round(2), nil
}

// RecoverBasePrice is the inverse of ApplyDiscount: given the current
// (discounted) price it returns the undiscounted reference price,
// current * 100 / (100 - percent), rounded half-up to 2 decimal places.
func RecoverBasePrice(current decimal.Decimal, percent string) (decimal.Decimal, error) {
	if percent == NoDiscount {
		return current, nil
	}
	p, err := parsePercent(percent)
	if err != nil {
		return decimal.Zero, err
	}
	return current.Mul(hundred).Div(hundred.Sub(p)).Round(2), nil
}

// RoundToHalf rounds a value to the nearest 0.5, half-up: the value is
// doubled, rounded to an integer, then halved.
func RoundToHalf(v decimal.Decimal) decimal.Decimal {
	return v.Mul(two).Round(0).Div(two)
}

func parsePercent(percent string) (decimal.Decimal, error) {
	p, err := decimal.NewFromString(percent)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed discount percentage %q: %w", percent, err)
	}
	if p.IsNegative() || p.GreaterThanOrEqual(hundred) {
		return decimal.Zero, fmt.Errorf("discount percentage %q out of range [0,100)", percent)
	}
	return p, nil
}
