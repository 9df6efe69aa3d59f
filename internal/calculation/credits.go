package calculation

import (
	"github.com/rgehrsitz/nlpay/internal/domain"
	"github.com/shopspring/decimal"
)

// SocialCreditMultiplier scales the credit schedules to the part of the combined
// first-bracket rate the employee actually pays.
//
// The first social security bracket carries the combined rate (wage tax plus
// contributions), the social share (AOW, Anw, Wlz) and the older share (Anw, Wlz).
// Without social security all contributions are removed; past retirement age only
// the AOW part is.
func SocialCreditMultiplier(rates *domain.TaxRates, reachedRetirementAge, socialSecurity bool) decimal.Decimal {
	bracket, ok := rates.SocialSecurity.First()
	if !ok || !bracket.Rate.IsPositive() {
		return unitMultiplier
	}

	rate := bracket.Rate
	social := decimal.Zero
	if bracket.SocialRate != nil {
		social = *bracket.SocialRate
	}
	older := decimal.Zero
	if bracket.OlderRate != nil {
		older = *bracket.OlderRate
	}

	switch {
	case !socialSecurity:
		return rate.Sub(social).Div(rate)
	case reachedRetirementAge:
		return rate.Add(older).Sub(social).Div(rate)
	default:
		return unitMultiplier
	}
}

// belowLowWage reports whether income falls under the scaled low-wage threshold.
// A zero multiplier leaves no credit to earn, so every income counts as below.
func belowLowWage(taxableIncome decimal.Decimal, rates *domain.TaxRates, multiplier decimal.Decimal) bool {
	if multiplier.IsZero() {
		return true
	}
	return taxableIncome.LessThan(rates.LowWageThreshold.Div(multiplier))
}

// labourCredit calculates arbeidskorting; zero below the low-wage threshold
func labourCredit(taxableIncome decimal.Decimal, rates *domain.TaxRates, multiplier decimal.Decimal) decimal.Decimal {
	if belowLowWage(taxableIncome, rates, multiplier) {
		return decimal.Zero
	}
	return CalculateBrackets(rates.LabourCredit, taxableIncome, domain.RatePrimary, multiplier)
}

// generalCredit calculates algemene heffingskorting plus, past retirement age,
// the ouderenkorting. The elder credit is never scaled.
func generalCredit(taxableIncome decimal.Decimal, rates *domain.TaxRates, reachedRetirementAge bool, multiplier decimal.Decimal) decimal.Decimal {
	credit := CalculateBrackets(rates.GeneralCredit, taxableIncome, domain.RatePrimary, multiplier)
	if reachedRetirementAge {
		credit = credit.Add(CalculateBrackets(rates.ElderCredit, taxableIncome, domain.RatePrimary, unitMultiplier))
	}
	return credit
}
