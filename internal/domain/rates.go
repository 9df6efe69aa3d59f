package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxRates bundles every schedule and threshold for one tax year.
// Values are built once by the rate provider and never mutated.
type TaxRates struct {
	Year int

	PayrollTax     BracketTable // loonbelasting
	SocialSecurity BracketTable // volksverzekeringen
	GeneralCredit  BracketTable // algemene heffingskorting
	LabourCredit   BracketTable // arbeidskorting
	ElderCredit    BracketTable // ouderenkorting

	RulingThresholdNormal   decimal.Decimal
	RulingThresholdYoung    decimal.Decimal
	RulingThresholdResearch decimal.Decimal
	RulingMaxSalary         *decimal.Decimal // nil means uncapped
	LowWageThreshold        decimal.Decimal
}

// RulingThreshold returns the salary floor for a 30% ruling type
func (r *TaxRates) RulingThreshold(t RulingType) decimal.Decimal {
	switch t {
	case RulingYoungMaster:
		return r.RulingThresholdYoung
	case RulingResearch:
		return r.RulingThresholdResearch
	default:
		return r.RulingThresholdNormal
	}
}

// Validate checks every schedule of the year
func (r *TaxRates) Validate() error {
	tables := []struct {
		name  string
		table BracketTable
	}{
		{"payrollTax", r.PayrollTax},
		{"socialPercent", r.SocialSecurity},
		{"generalCredit", r.GeneralCredit},
		{"labourCredit", r.LabourCredit},
		{"elderCredit", r.ElderCredit},
	}
	for _, t := range tables {
		if err := t.table.Validate(); err != nil {
			return fmt.Errorf("%s %d: %w", t.name, r.Year, err)
		}
	}
	if r.LowWageThreshold.IsNegative() {
		return fmt.Errorf("lowWageThreshold %d cannot be negative", r.Year)
	}
	if r.RulingMaxSalary != nil && r.RulingMaxSalary.IsNegative() {
		return fmt.Errorf("rulingMaxSalary %d cannot be negative", r.Year)
	}
	return nil
}
