package service

import (
	"testing"

	"github.com/heavensaji/fundtos/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeeCalculator_RegularNoSurcharge(t *testing.T) {
	calc := NewFeeCalculator()

	for _, raw := range []string{"1", "100", "0.01", "999999999.99"} {
		base, err := decimal.NewFromString(raw)
		require.NoError(t, err)

		assert.True(t, calc.PlatformFee(base, domain.CategoryRegular).IsZero(), "base %s", raw)
		assert.True(t, calc.ChargeableAmount(base, domain.CategoryRegular).Equal(base), "base %s", raw)
	}
}

func TestFeeCalculator_SeedFundingSurcharge(t *testing.T) {
	calc := NewFeeCalculator()

	tests := []struct {
		base string
		fee  string
		total string
	}{
		{"100", "2", "102"},
		{"50", "1", "51"},
		{"1", "0.02", "1.02"},
		{"0.5", "0.01", "0.51"},
		{"250", "5", "255"},
		{"12345.67", "246.9134", "12592.5834"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			base := decimal.RequireFromString(tt.base)

			fee := calc.PlatformFee(base, domain.CategorySeedFunding)
			assert.True(t, fee.Equal(decimal.RequireFromString(tt.fee)),
				"fee for %s: got %s want %s", tt.base, fee, tt.fee)

			total := calc.ChargeableAmount(base, domain.CategorySeedFunding)
			assert.True(t, total.Equal(decimal.RequireFromString(tt.total)),
				"total for %s: got %s want %s", tt.base, total, tt.total)
		})
	}
}

func TestFeeCalculator_SeedFundingIsExactMultiple(t *testing.T) {
	calc := NewFeeCalculator()
	factor := decimal.RequireFromString("1.02")

	for _, raw := range []string{"3", "7", "19", "0.33", "1000000"} {
		base := decimal.RequireFromString(raw)
		total := calc.ChargeableAmount(base, domain.CategorySeedFunding)
		assert.True(t, total.Equal(base.Mul(factor)), "base %s: got %s", raw, total)
	}
}
