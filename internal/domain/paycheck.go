package domain

import (
	"github.com/shopspring/decimal"
)

var (
	monthsPerYear = decimal.NewFromInt(12)
	hundred       = decimal.NewFromInt(100)
)

// PaycheckResult holds the yearly figures of one calculation. Every
// period-scaled amount is derived from the year figure on read.
// Taxes are negative amounts, credits positive.
type PaycheckResult struct {
	Year int

	GrossYear      decimal.Decimal
	GrossAllowance decimal.Decimal
	TaxFreeYear    decimal.Decimal
	TaxableYear    decimal.Decimal
	PayrollTax     decimal.Decimal
	SocialTax      decimal.Decimal
	LabourCredit   decimal.Decimal
	GeneralCredit  decimal.Decimal
	NetYear        decimal.Decimal
	NetAllowance   decimal.Decimal

	WorkingWeeks int
	WorkingDays  int
	HoursPerWeek decimal.Decimal
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// divide returns zero for a zero divisor so that a 0-hour contract yields
// zero hourly figures instead of failing.
func divide(amount, by decimal.Decimal) decimal.Decimal {
	if by.IsZero() {
		return decimal.Zero
	}
	return round2(amount.Div(by))
}

func (r *PaycheckResult) weeks() decimal.Decimal {
	return decimal.NewFromInt(int64(r.WorkingWeeks))
}

func (r *PaycheckResult) days() decimal.Decimal {
	return decimal.NewFromInt(int64(r.WorkingDays))
}

func (r *PaycheckResult) hoursPerYear() decimal.Decimal {
	return r.weeks().Mul(r.HoursPerWeek)
}

// GrossMonth is the yearly gross spread over twelve months
func (r *PaycheckResult) GrossMonth() decimal.Decimal { return divide(r.GrossYear, monthsPerYear) }

// GrossWeek is the yearly gross per working week
func (r *PaycheckResult) GrossWeek() decimal.Decimal { return divide(r.GrossYear, r.weeks()) }

// GrossDay is the yearly gross per working day
func (r *PaycheckResult) GrossDay() decimal.Decimal { return divide(r.GrossYear, r.days()) }

// GrossHour is the yearly gross per contract hour, zero for a 0-hour week
func (r *PaycheckResult) GrossHour() decimal.Decimal { return divide(r.GrossYear, r.hoursPerYear()) }

// NetMonth is the yearly net spread over twelve months
func (r *PaycheckResult) NetMonth() decimal.Decimal { return divide(r.NetYear, monthsPerYear) }

// NetWeek is the yearly net per working week
func (r *PaycheckResult) NetWeek() decimal.Decimal { return divide(r.NetYear, r.weeks()) }

// NetDay is the yearly net per working day
func (r *PaycheckResult) NetDay() decimal.Decimal { return divide(r.NetYear, r.days()) }

// NetHour is the yearly net per contract hour, zero for a 0-hour week
func (r *PaycheckResult) NetHour() decimal.Decimal { return divide(r.NetYear, r.hoursPerYear()) }

// TaxWithoutCredit is payroll tax plus social contributions before credits
func (r *PaycheckResult) TaxWithoutCredit() decimal.Decimal {
	return round2(r.PayrollTax.Add(r.SocialTax))
}

// TaxCredit is the sum of labour and general credit
func (r *PaycheckResult) TaxCredit() decimal.Decimal {
	return round2(r.LabourCredit.Add(r.GeneralCredit))
}

// IncomeTax is the tax due after credits
func (r *PaycheckResult) IncomeTax() decimal.Decimal {
	return round2(r.TaxWithoutCredit().Add(r.TaxCredit()))
}

// PayrollTaxMonth is the monthly share of payroll tax
func (r *PaycheckResult) PayrollTaxMonth() decimal.Decimal { return divide(r.PayrollTax, monthsPerYear) }

// SocialTaxMonth is the monthly share of social contributions
func (r *PaycheckResult) SocialTaxMonth() decimal.Decimal { return divide(r.SocialTax, monthsPerYear) }

// LabourCreditMonth is the monthly share of the labour credit
func (r *PaycheckResult) LabourCreditMonth() decimal.Decimal {
	return divide(r.LabourCredit, monthsPerYear)
}

// GeneralCreditMonth is the monthly share of the general credit
func (r *PaycheckResult) GeneralCreditMonth() decimal.Decimal {
	return divide(r.GeneralCredit, monthsPerYear)
}

// TaxWithoutCreditMonth is the monthly tax before credits
func (r *PaycheckResult) TaxWithoutCreditMonth() decimal.Decimal {
	return divide(r.TaxWithoutCredit(), monthsPerYear)
}

// TaxCreditMonth is the monthly share of both credits
func (r *PaycheckResult) TaxCreditMonth() decimal.Decimal { return divide(r.TaxCredit(), monthsPerYear) }

// IncomeTaxMonth is the monthly tax after credits
func (r *PaycheckResult) IncomeTaxMonth() decimal.Decimal { return divide(r.IncomeTax(), monthsPerYear) }

// TaxFreePercent is the share of gross income exempted by the 30% ruling
func (r *PaycheckResult) TaxFreePercent() decimal.Decimal {
	if !r.GrossYear.IsPositive() {
		return decimal.Zero
	}
	return round2(r.TaxFreeYear.Div(r.GrossYear).Mul(hundred))
}

// EffectiveTaxRate is the income tax as a percentage of gross income
func (r *PaycheckResult) EffectiveTaxRate() decimal.Decimal {
	if !r.GrossYear.IsPositive() {
		return decimal.Zero
	}
	return round2(r.IncomeTax().Abs().Div(r.GrossYear).Mul(hundred))
}

// SnapshotKeys is the stable key order of Snapshot
var SnapshotKeys = []string{
	"grossYear", "grossMonth", "grossWeek", "grossDay", "grossHour", "grossAllowance",
	"taxFreeYear", "taxFreePercent", "taxableYear",
	"payrollTax", "payrollTaxMonth", "socialTax", "socialTaxMonth",
	"taxWithoutCredit", "taxWithoutCreditMonth",
	"labourCredit", "labourCreditMonth", "generalCredit", "generalCreditMonth",
	"taxCredit", "taxCreditMonth", "incomeTax", "incomeTaxMonth",
	"netYear", "netAllowance", "netMonth", "netWeek", "netDay", "netHour",
	"effectiveTaxRate",
}

// Snapshot flattens the result into key/amount pairs for serialization
func (r *PaycheckResult) Snapshot() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"grossYear":             r.GrossYear,
		"grossMonth":            r.GrossMonth(),
		"grossWeek":             r.GrossWeek(),
		"grossDay":              r.GrossDay(),
		"grossHour":             r.GrossHour(),
		"grossAllowance":        r.GrossAllowance,
		"taxFreeYear":           r.TaxFreeYear,
		"taxFreePercent":        r.TaxFreePercent(),
		"taxableYear":           r.TaxableYear,
		"payrollTax":            r.PayrollTax,
		"payrollTaxMonth":       r.PayrollTaxMonth(),
		"socialTax":             r.SocialTax,
		"socialTaxMonth":        r.SocialTaxMonth(),
		"taxWithoutCredit":      r.TaxWithoutCredit(),
		"taxWithoutCreditMonth": r.TaxWithoutCreditMonth(),
		"labourCredit":          r.LabourCredit,
		"labourCreditMonth":     r.LabourCreditMonth(),
		"generalCredit":         r.GeneralCredit,
		"generalCreditMonth":    r.GeneralCreditMonth(),
		"taxCredit":             r.TaxCredit(),
		"taxCreditMonth":        r.TaxCreditMonth(),
		"incomeTax":             r.IncomeTax(),
		"incomeTaxMonth":        r.IncomeTaxMonth(),
		"netYear":               r.NetYear,
		"netAllowance":          r.NetAllowance,
		"netMonth":              r.NetMonth(),
		"netWeek":               r.NetWeek(),
		"netDay":                r.NetDay(),
		"netHour":               r.NetHour(),
		"effectiveTaxRate":      r.EffectiveTaxRate(),
	}
}
