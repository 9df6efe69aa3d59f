package output

import "github.com/rgehrsitz/nlpay/internal/domain"

// Report is the serialised view of a paycheck shared by the JSON, YAML and HTTP outputs.
// Amounts are fixed two-decimal strings so no precision is lost in transit.
type Report struct {
	Year         int    `json:"year" yaml:"year"`
	WorkingWeeks int    `json:"workingWeeks" yaml:"workingWeeks"`
	WorkingDays  int    `json:"workingDays" yaml:"workingDays"`
	HoursPerWeek string `json:"hoursPerWeek" yaml:"hoursPerWeek"`

	GrossYear      string `json:"grossYear" yaml:"grossYear"`
	GrossMonth     string `json:"grossMonth" yaml:"grossMonth"`
	GrossWeek      string `json:"grossWeek" yaml:"grossWeek"`
	GrossDay       string `json:"grossDay" yaml:"grossDay"`
	GrossHour      string `json:"grossHour" yaml:"grossHour"`
	GrossAllowance string `json:"grossAllowance" yaml:"grossAllowance"`

	TaxFreeYear    string `json:"taxFreeYear" yaml:"taxFreeYear"`
	TaxFreePercent string `json:"taxFreePercent" yaml:"taxFreePercent"`
	TaxableYear    string `json:"taxableYear" yaml:"taxableYear"`

	PayrollTax            string `json:"payrollTax" yaml:"payrollTax"`
	PayrollTaxMonth       string `json:"payrollTaxMonth" yaml:"payrollTaxMonth"`
	SocialTax             string `json:"socialTax" yaml:"socialTax"`
	SocialTaxMonth        string `json:"socialTaxMonth" yaml:"socialTaxMonth"`
	TaxWithoutCredit      string `json:"taxWithoutCredit" yaml:"taxWithoutCredit"`
	TaxWithoutCreditMonth string `json:"taxWithoutCreditMonth" yaml:"taxWithoutCreditMonth"`

	LabourCredit       string `json:"labourCredit" yaml:"labourCredit"`
	LabourCreditMonth  string `json:"labourCreditMonth" yaml:"labourCreditMonth"`
	GeneralCredit      string `json:"generalCredit" yaml:"generalCredit"`
	GeneralCreditMonth string `json:"generalCreditMonth" yaml:"generalCreditMonth"`
	TaxCredit          string `json:"taxCredit" yaml:"taxCredit"`
	TaxCreditMonth     string `json:"taxCreditMonth" yaml:"taxCreditMonth"`
	IncomeTax          string `json:"incomeTax" yaml:"incomeTax"`
	IncomeTaxMonth     string `json:"incomeTaxMonth" yaml:"incomeTaxMonth"`

	NetYear      string `json:"netYear" yaml:"netYear"`
	NetAllowance string `json:"netAllowance" yaml:"netAllowance"`
	NetMonth     string `json:"netMonth" yaml:"netMonth"`
	NetWeek      string `json:"netWeek" yaml:"netWeek"`
	NetDay       string `json:"netDay" yaml:"netDay"`
	NetHour      string `json:"netHour" yaml:"netHour"`

	EffectiveTaxRate string `json:"effectiveTaxRate" yaml:"effectiveTaxRate"`
}

// NewReport flattens a result and all of its derived amounts
func NewReport(r *domain.PaycheckResult) Report {
	return Report{
		Year:         r.Year,
		WorkingWeeks: r.WorkingWeeks,
		WorkingDays:  r.WorkingDays,
		HoursPerWeek: r.HoursPerWeek.String(),

		GrossYear:      r.GrossYear.StringFixed(2),
		GrossMonth:     r.GrossMonth().StringFixed(2),
		GrossWeek:      r.GrossWeek().StringFixed(2),
		GrossDay:       r.GrossDay().StringFixed(2),
		GrossHour:      r.GrossHour().StringFixed(2),
		GrossAllowance: r.GrossAllowance.StringFixed(2),

		TaxFreeYear:    r.TaxFreeYear.StringFixed(2),
		TaxFreePercent: r.TaxFreePercent().StringFixed(2),
		TaxableYear:    r.TaxableYear.StringFixed(2),

		PayrollTax:            r.PayrollTax.StringFixed(2),
		PayrollTaxMonth:       r.PayrollTaxMonth().StringFixed(2),
		SocialTax:             r.SocialTax.StringFixed(2),
		SocialTaxMonth:        r.SocialTaxMonth().StringFixed(2),
		TaxWithoutCredit:      r.TaxWithoutCredit().StringFixed(2),
		TaxWithoutCreditMonth: r.TaxWithoutCreditMonth().StringFixed(2),

		LabourCredit:       r.LabourCredit.StringFixed(2),
		LabourCreditMonth:  r.LabourCreditMonth().StringFixed(2),
		GeneralCredit:      r.GeneralCredit.StringFixed(2),
		GeneralCreditMonth: r.GeneralCreditMonth().StringFixed(2),
		TaxCredit:          r.TaxCredit().StringFixed(2),
		TaxCreditMonth:     r.TaxCreditMonth().StringFixed(2),
		IncomeTax:          r.IncomeTax().StringFixed(2),
		IncomeTaxMonth:     r.IncomeTaxMonth().StringFixed(2),

		NetYear:      r.NetYear.StringFixed(2),
		NetAllowance: r.NetAllowance.StringFixed(2),
		NetMonth:     r.NetMonth().StringFixed(2),
		NetWeek:      r.NetWeek().StringFixed(2),
		NetDay:       r.NetDay().StringFixed(2),
		NetHour:      r.NetHour().StringFixed(2),

		EffectiveTaxRate: r.EffectiveTaxRate().StringFixed(2),
	}
}
