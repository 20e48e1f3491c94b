package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/pricing"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		percent string
		want    string
	}{
		{"ten percent off", "100.00", "10", "90.00"},
		{"rounds half up", "33.33", "50", "16.67"},
		{"sentinel is identity", "123.45", "0", "123.45"},
		{"ninety nine percent", "100.00", "99", "1.00"},
		{"zero base", "0.00", "25", "0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.ApplyDiscount(dec(tt.base), tt.percent)
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestApplyDiscount_MalformedPercent(t *testing.T) {
	_, err := pricing.ApplyDiscount(dec("100.00"), "abc")
	assert.Error(t, err)

	_, err = pricing.ApplyDiscount(dec("100.00"), "100")
	assert.Error(t, err)

	_, err = pricing.ApplyDiscount(dec("100.00"), "-5")
	assert.Error(t, err)
}

func TestRecoverBasePrice(t *testing.T) {
	tests := []struct {
		name    string
		current string
		percent string
		want    string
	}{
		{"inverse of ten percent", "90.00", "10", "100.00"},
		{"sentinel is identity", "90.00", "0", "90.00"},
		{"half price", "50.00", "50", "100.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.RecoverBasePrice(dec(tt.current), tt.percent)
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

// Applying a discount and recovering the base price must agree within a
// cent. The 2dp rounding error on the discounted price is amplified by
// 100/(100-p) on recovery, so the cent tolerance holds for arbitrary
// bases up to 50%; round bases stay exact across the whole range.
func TestRoundTripWithinTolerance(t *testing.T) {
	tolerance := dec("0.01")

	for p := 1; p < 100; p++ {
		percent := decimal.NewFromInt(int64(p)).String()
		base := dec("100.00")
		discounted, err := pricing.ApplyDiscount(base, percent)
		require.NoError(t, err)
		recovered, err := pricing.RecoverBasePrice(discounted, percent)
		require.NoError(t, err)
		assert.True(t, recovered.Equal(base),
			"percent %s: recovered %s, want 100.00", percent, recovered)
	}

	bases := []string{"19.99", "0.01", "99999999.99", "123.45"}
	for p := 1; p <= 50; p++ {
		percent := decimal.NewFromInt(int64(p)).String()
		for _, b := range bases {
			base := dec(b)
			discounted, err := pricing.ApplyDiscount(base, percent)
			require.NoError(t, err)
			recovered, err := pricing.RecoverBasePrice(discounted, percent)
			require.NoError(t, err)

			diff := recovered.Sub(base).Abs()
			assert.True(t, diff.LessThanOrEqual(tolerance),
				"base %s percent %s: recovered %s drifted by %s", b, percent, recovered, diff)
		}
	}
}

func TestRoundToHalf(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1.5", "1.5"},
		{"1.6", "1.5"},  // 1.6*2 = 3.2 -> 3 -> 1.5
		{"1.75", "2.0"}, // half-up boundary: 3.5 -> 4 -> 2.0
		{"1.2", "1.0"},
		{"4.8", "5.0"},
		{"0", "0"},
	}
	for _, tt := range tests {
		got := pricing.RoundToHalf(dec(tt.in))
		assert.True(t, got.Equal(dec(tt.want)), "RoundToHalf(%s) = %s, want %s", tt.in, got, tt.want)
	}
}
