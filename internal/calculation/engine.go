package calculation

import (
	"errors"
	"fmt"

	"github.com/rgehrsitz/nlpay/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	holidayAllowanceRate  = decimal.RequireFromString("0.08")
	holidayAllowanceGross = decimal.RequireFromString("1.08")
)

// ErrNoRateProvider is returned when an engine has no rate source
var ErrNoRateProvider = errors.New("no rate provider configured")

// CalculationEngine turns salary inputs into paychecks using the rates of a provider
type CalculationEngine struct {
	Rates  RateProvider
	Logger Logger
	Debug  bool // trace intermediate pipeline values
}

// NewCalculationEngine creates an engine reading rates from provider
func NewCalculationEngine(provider RateProvider) *CalculationEngine {
	return &CalculationEngine{
		Rates:  provider,
		Logger: NopLogger{},
	}
}

// SetLogger replaces the logger; nil restores the no-op logger
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Calculate runs a single calculation against provider without keeping an engine around
func Calculate(input domain.SalaryInput, period domain.Period, year int, ruling domain.RulingOptions, provider RateProvider) (*domain.PaycheckResult, error) {
	return NewCalculationEngine(provider).Calculate(input, period, year, ruling)
}

// Calculate computes the full paycheck for input expressed per period in the given tax year
func (ce *CalculationEngine) Calculate(input domain.SalaryInput, period domain.Period, year int, ruling domain.RulingOptions) (*domain.PaycheckResult, error) {
	if ce.Rates == nil {
		return nil, ErrNoRateProvider
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rates, err := ce.Rates.TaxRatesForYear(year)
	if err != nil {
		return nil, err
	}

	weeks, days := ce.Rates.WorkingWeeks(), ce.Rates.WorkingDays()
	state := runPipeline(input, period, ruling, rates, weeks, days)

	if ce.Debug {
		ce.logState(year, state)
	}

	return &domain.PaycheckResult{
		Year:           year,
		GrossYear:      roundMoney(state.grossYear),
		GrossAllowance: roundMoney(state.grossAllowance),
		TaxFreeYear:    roundMoney(state.taxFreeYear),
		TaxableYear:    roundMoney(state.taxableYear.Add(state.taxFreeYear)),
		PayrollTax:     roundMoney(state.payrollTax),
		SocialTax:      roundMoney(state.socialTax),
		LabourCredit:   roundMoney(state.labourCredit),
		GeneralCredit:  roundMoney(state.generalCredit),
		NetYear:        roundMoney(state.netYear),
		NetAllowance:   roundMoney(state.netAllowance),
		WorkingWeeks:   weeks,
		WorkingDays:    days,
		HoursPerWeek:   input.HoursPerWeek,
	}, nil
}

// CalculateYears runs the same input through several tax years.
// It stops at the first year the provider does not support.
func (ce *CalculationEngine) CalculateYears(input domain.SalaryInput, period domain.Period, years []int, ruling domain.RulingOptions) ([]*domain.PaycheckResult, error) {
	results := make([]*domain.PaycheckResult, 0, len(years))
	for _, year := range years {
		result, err := ce.Calculate(input, period, year, ruling)
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", year, err)
		}
		results = append(results, result)
	}
	return results, nil
}

// pipelineState names every intermediate value of one calculation.
// Fields are filled strictly in declaration order by runPipeline.
type pipelineState struct {
	grossYear        decimal.Decimal
	grossAllowance   decimal.Decimal
	taxableYear      decimal.Decimal // after the ruling deduction
	taxFreeYear      decimal.Decimal
	payrollTax       decimal.Decimal // negative
	socialTax        decimal.Decimal // negative
	taxWithoutCredit decimal.Decimal
	creditMultiplier decimal.Decimal
	belowLowWage     bool
	labourCredit     decimal.Decimal
	generalCredit    decimal.Decimal
	incomeTax        decimal.Decimal
	netYear          decimal.Decimal
	netAllowance     decimal.Decimal
}

// runPipeline is the only place the credit steps run. The general credit clamp needs
// the tax and labour credit computed before it, so the steps must not be reordered.
func runPipeline(input domain.SalaryInput, period domain.Period, ruling domain.RulingOptions, rates *domain.TaxRates, workingWeeks, workingDays int) pipelineState {
	var s pipelineState

	s.grossYear = input.Income.Mul(period.AnnualMultiplier(workingWeeks, workingDays, input.HoursPerWeek))
	if s.grossYear.IsNegative() {
		s.grossYear = decimal.Zero
	}

	if input.IncludeHolidayAllowance {
		s.grossAllowance = holidayAllowance(s.grossYear)
	}
	s.taxableYear = s.grossYear.Sub(s.grossAllowance)

	s.taxFreeYear = TaxFreeAmount(s.taxableYear, ruling, rates)
	s.taxableYear = s.taxableYear.Sub(s.taxFreeYear)

	s.payrollTax = PayrollTax(s.taxableYear, rates).Neg()
	if input.SocialSecurity {
		s.socialTax = SocialSecurityTax(s.taxableYear, rates, input.ReachedRetirementAge).Neg()
	}
	s.taxWithoutCredit = roundMoney(s.payrollTax.Add(s.socialTax))

	s.creditMultiplier = SocialCreditMultiplier(rates, input.ReachedRetirementAge, input.SocialSecurity)
	s.belowLowWage = belowLowWage(s.taxableYear, rates, s.creditMultiplier)
	s.labourCredit = labourCredit(s.taxableYear, rates, s.creditMultiplier)
	s.generalCredit = generalCredit(s.taxableYear, rates, input.ReachedRetirementAge, s.creditMultiplier)

	// credits may cancel the tax bill but never turn it into a refund
	if s.taxWithoutCredit.Add(s.labourCredit).Add(s.generalCredit).IsPositive() ||
		(input.ReachedRetirementAge && s.belowLowWage) {
		s.generalCredit = s.taxWithoutCredit.Add(s.labourCredit).Neg()
	}

	s.incomeTax = roundMoney(s.taxWithoutCredit.Add(s.labourCredit).Add(s.generalCredit))
	s.netYear = s.taxableYear.Add(s.incomeTax).Add(s.taxFreeYear)

	if input.IncludeHolidayAllowance {
		s.netAllowance = holidayAllowance(s.netYear)
	}
	return s
}

// holidayAllowance extracts the 8% vakantiegeld already contained in an annual amount
func holidayAllowance(annual decimal.Decimal) decimal.Decimal {
	return roundMoney(annual.Mul(holidayAllowanceRate).Div(holidayAllowanceGross))
}

func (ce *CalculationEngine) logState(year int, s pipelineState) {
	ce.Logger.Debugf("year %d: gross=%s allowance=%s taxFree=%s taxable=%s",
		year, s.grossYear.StringFixed(2), s.grossAllowance.StringFixed(2), s.taxFreeYear.StringFixed(2), s.taxableYear.StringFixed(2))
	ce.Logger.Debugf("year %d: payroll=%s social=%s multiplier=%s labour=%s general=%s incomeTax=%s net=%s",
		year, s.payrollTax.StringFixed(2), s.socialTax.StringFixed(2), s.creditMultiplier.StringFixed(5),
		s.labourCredit.StringFixed(2), s.generalCredit.StringFixed(2), s.incomeTax.StringFixed(2), s.netYear.StringFixed(2))
}

// SupportedYears lists the tax years the provider has tables for
func (ce *CalculationEngine) SupportedYears() []int { return ce.Rates.SupportedYears() }

// CurrentYear is the provider's default tax year
func (ce *CalculationEngine) CurrentYear() int { return ce.Rates.CurrentYear() }

// IsYearSupported reports whether year can be calculated
func (ce *CalculationEngine) IsYearSupported(year int) bool { return ce.Rates.IsYearSupported(year) }

// WorkingWeeks is the number of paid weeks in a year
func (ce *CalculationEngine) WorkingWeeks() int { return ce.Rates.WorkingWeeks() }

// WorkingDays is the number of paid days in a year
func (ce *CalculationEngine) WorkingDays() int { return ce.Rates.WorkingDays() }

// DefaultWorkingHours is the contract week assumed when none is given
func (ce *CalculationEngine) DefaultWorkingHours() int { return ce.Rates.DefaultWorkingHours() }

// NewSalaryInput builds a validated input whose working hours default to the
// provider's contract week. Options override the default.
func (ce *CalculationEngine) NewSalaryInput(income decimal.Decimal, opts ...domain.InputOption) (domain.SalaryInput, error) {
	if ce.Rates == nil {
		return domain.NewSalaryInput(income, opts...)
	}
	hours := domain.WithHoursPerWeek(decimal.NewFromInt(int64(ce.DefaultWorkingHours())))
	return domain.NewSalaryInput(income, append([]domain.InputOption{hours}, opts...)...)
}
