package money

import "github.com/shopspring/decimal"

// DefaultCommissionRate is the platform cut applied when no rate is configured.
var DefaultCommissionRate = decimal.NewFromFloat(0.15)

// minorUnitPlaces is the rounding precision for currency amounts (cents).
const minorUnitPlaces = 2

// DealSplit breaks a sponsorship amount into the platform commission and the
// organizer payout.
type DealSplit struct {
	SponsorshipAmount decimal.Decimal `json:"sponsorship_amount"`
	Commission        decimal.Decimal `json:"commission"`
	OrganizerReceives decimal.Decimal `json:"organizer_receives"`
}

// Commission returns the platform cut for the given amount, rounded to the
// currency minor unit.
func Commission(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(minorUnitPlaces)
}

// DealValue splits a sponsorship amount between the platform and the
// organizer. The organizer side is computed by subtraction so that
// Commission + OrganizerReceives always sums back to the amount exactly.
func DealValue(amount, rate decimal.Decimal) DealSplit {
	commission := Commission(amount, rate)
	return DealSplit{
		SponsorshipAmount: amount,
		Commission:        commission,
		OrganizerReceives: amount.Sub(commission),
	}
}

// CPM returns the cost per thousand impressions. Zero impressions yields zero.
func CPM(cost decimal.Decimal, impressions int64) decimal.Decimal {
	if impressions <= 0 {
		return decimal.Zero
	}
	return cost.Div(decimal.NewFromInt(impressions)).Mul(decimal.NewFromInt(1000))
}

// ROI returns the return on investment as a percentage. Zero investment
// yields zero.
func ROI(investment, returnValue decimal.Decimal) decimal.Decimal {
	if investment.IsZero() {
		return decimal.Zero
	}
	return returnValue.Sub(investment).Div(investment).Mul(decimal.NewFromInt(100))
}

// ValidRate reports whether the commission rate is within [0, 1].
func ValidRate(rate decimal.Decimal) bool {
	return !rate.IsNegative() && rate.LessThanOrEqual(decimal.NewFromInt(1))
}
