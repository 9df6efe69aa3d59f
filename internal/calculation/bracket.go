package calculation

import (
	"github.com/rgehrsitz/nlpay/internal/domain"
	"github.com/shopspring/decimal"
)

// rateDecimals is the precision applied to a rate after scaling by a multiplier.
// Money amounts use two decimals.
const rateDecimals = 5

func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// CalculateBrackets walks a progressive schedule and returns the amount due on base.
//
// Each bracket contributes either a percentage of the income falling inside it or a
// fixed amount that replaces everything accumulated so far. Money is rounded to cents
// at every step, matching the published wage tax tables. The walk stops at the
// bracket that holds the remainder of base; an unbounded bracket always does.
func CalculateBrackets(table domain.BracketTable, base decimal.Decimal, selector domain.RateSelector, multiplier decimal.Decimal) decimal.Decimal {
	remaining := base
	amount := decimal.Zero

	for _, bracket := range table {
		rate := multiplier.Mul(bracket.RateFor(selector)).Round(rateDecimals)
		percentage := domain.ClassifyRate(rate) == domain.RateKindPercentage

		width, bounded := bracket.Width()
		if !bounded || remaining.LessThanOrEqual(width) {
			if percentage {
				amount = amount.Add(roundMoney(remaining.Mul(rate)))
			} else {
				// a zero rate lands here too and wipes the running amount
				amount = rate
			}
			return roundMoney(amount)
		}

		if percentage {
			amount = amount.Add(roundMoney(width.Mul(rate)))
		} else {
			amount = rate
		}
		remaining = remaining.Sub(width)
	}

	// closed table exhausted: income above the last bound adds nothing
	return amount
}
