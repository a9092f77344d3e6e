package service

import (
	"github.com/heavensaji/fundtos/internal/core/domain"

	"github.com/shopspring/decimal"
)

// seedFundingFeeRate is the additive donor-paid surcharge on seed funding
// donations: 2% of the base amount.
var seedFundingFeeRate = decimal.NewFromInt(2).Div(decimal.NewFromInt(100))

// FeeCalculator computes the total chargeable amount for a donation.
// It is pure: no state, no side effects.
type FeeCalculator struct{}

// NewFeeCalculator creates a FeeCalculator.
func NewFeeCalculator() FeeCalculator {
	return FeeCalculator{}
}

// PlatformFee returns the surcharge for a donation of base amount to a
// campaign of the given category. Regular campaigns carry no fee.
func (FeeCalculator) PlatformFee(base decimal.Decimal, category domain.CampaignCategory) decimal.Decimal {
	if category != domain.CategorySeedFunding {
		return decimal.Zero
	}
	return base.Mul(seedFundingFeeRate)
}

// ChargeableAmount returns the total the donor is charged: the base amount
// plus the platform fee. The entry function transfers the full chargeable
// amount; this function only computes the total to submit.
//
// Precondition: base > 0 (enforced by the orchestrator before calling).
func (f FeeCalculator) ChargeableAmount(base decimal.Decimal, category domain.CampaignCategory) decimal.Decimal {
	return base.Add(f.PlatformFee(base, category))
}
