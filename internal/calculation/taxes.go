package calculation

import (
	"github.com/rgehrsitz/nlpay/internal/domain"
	"github.com/shopspring/decimal"
)

var unitMultiplier = decimal.NewFromInt(1)

// PayrollTax calculates wage tax (loonbelasting) on annual taxable income.
// The result is the positive amount due.
func PayrollTax(taxableIncome decimal.Decimal, rates *domain.TaxRates) decimal.Decimal {
	return CalculateBrackets(rates.PayrollTax, taxableIncome, domain.RatePrimary, unitMultiplier)
}

// SocialSecurityTax calculates the national insurance contributions (AOW, Anw, Wlz).
// Past retirement age the AOW part is dropped and the reduced older rate applies.
func SocialSecurityTax(taxableIncome decimal.Decimal, rates *domain.TaxRates, reachedRetirementAge bool) decimal.Decimal {
	selector := domain.RateSocial
	if reachedRetirementAge {
		selector = domain.RateOlder
	}
	return CalculateBrackets(rates.SocialSecurity, taxableIncome, selector, unitMultiplier)
}
