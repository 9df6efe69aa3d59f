package calculation

import (
	"github.com/rgehrsitz/nlpay/internal/domain"
	"github.com/shopspring/decimal"
)

// rulingTaxedShare is the part of eligible salary that stays taxable under the ruling
var rulingTaxedShare = decimal.RequireFromString("0.7")

// TaxFreeAmount returns the allowance an employer may pay tax free under the 30% ruling.
//
// Only salary up to the yearly cap is eligible. The remaining taxable salary may not
// drop below the threshold of the ruling type, so the allowance shrinks for incomes
// close to that threshold and is zero below it.
func TaxFreeAmount(taxableIncome decimal.Decimal, options domain.RulingOptions, rates *domain.TaxRates) decimal.Decimal {
	if !options.Enabled {
		return decimal.Zero
	}

	threshold := rates.RulingThreshold(options.Type)

	eligible := taxableIncome
	aboveCap := decimal.Zero
	if rates.RulingMaxSalary != nil && taxableIncome.GreaterThan(*rates.RulingMaxSalary) {
		eligible = *rates.RulingMaxSalary
		aboveCap = taxableIncome.Sub(*rates.RulingMaxSalary)
	}

	effectiveSalary := decimal.Max(eligible.Mul(rulingTaxedShare).Add(aboveCap), threshold)
	reimbursement := taxableIncome.Sub(effectiveSalary)

	return decimal.Max(decimal.Zero, roundMoney(reimbursement))
}
