package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Period is the time unit an income figure is expressed in
type Period int

const (
	PeriodYear Period = iota
	PeriodMonth
	PeriodWeek
	PeriodDay
	PeriodHour
)

// Periods lists every period in display order
var Periods = []Period{PeriodYear, PeriodMonth, PeriodWeek, PeriodDay, PeriodHour}

func (p Period) String() string {
	switch p {
	case PeriodMonth:
		return "month"
	case PeriodWeek:
		return "week"
	case PeriodDay:
		return "day"
	case PeriodHour:
		return "hour"
	default:
		return "year"
	}
}

// ParsePeriod maps a name such as "month" to a Period
func ParsePeriod(s string) (Period, error) {
	for _, p := range Periods {
		if strings.EqualFold(strings.TrimSpace(s), p.String()) {
			return p, nil
		}
	}
	return PeriodYear, fmt.Errorf("unknown period %q (valid: year, month, week, day, hour)", s)
}

// AnnualMultiplier converts one unit of the period into a year
func (p Period) AnnualMultiplier(workingWeeks, workingDays int, hoursPerWeek decimal.Decimal) decimal.Decimal {
	switch p {
	case PeriodMonth:
		return decimal.NewFromInt(12)
	case PeriodWeek:
		return decimal.NewFromInt(int64(workingWeeks))
	case PeriodDay:
		return decimal.NewFromInt(int64(workingDays))
	case PeriodHour:
		return decimal.NewFromInt(int64(workingWeeks)).Mul(hoursPerWeek)
	default:
		return decimal.NewFromInt(1)
	}
}

// RulingType identifies the 30% ruling category
type RulingType int

const (
	RulingNormal RulingType = iota
	RulingYoungMaster
	RulingResearch
)

func (t RulingType) String() string {
	switch t {
	case RulingYoungMaster:
		return "young"
	case RulingResearch:
		return "research"
	default:
		return "normal"
	}
}

// ParseRulingType maps "normal", "young" or "research" to a RulingType
func ParseRulingType(s string) (RulingType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "":
		return RulingNormal, nil
	case "young", "youngmaster", "young_master":
		return RulingYoungMaster, nil
	case "research":
		return RulingResearch, nil
	}
	return RulingNormal, fmt.Errorf("unknown ruling type %q (valid: normal, young, research)", s)
}

// RulingOptions selects whether and how the 30% ruling applies
type RulingOptions struct {
	Enabled bool
	Type    RulingType
}

// RulingDisabled returns options without the 30% ruling
func RulingDisabled() RulingOptions {
	return RulingOptions{}
}

// RulingEnabled returns options applying the ruling of the given type
func RulingEnabled(t RulingType) RulingOptions {
	return RulingOptions{Enabled: true, Type: t}
}

var maxHoursPerWeek = decimal.NewFromInt(168)

// MaxAmount bounds every money figure accepted as input
var MaxAmount = decimal.NewFromInt(1_000_000_000)

const (
	maxIntegerDigits  = 10
	maxFractionDigits = 20
)

// CheckAmount rejects amounts beyond MaxAmount or with more fractional digits
// than any currency needs. The digit checks run first since comparing or
// rounding a decimal with a huge exponent expands it in full.
func CheckAmount(field string, amount decimal.Decimal) error {
	coefficient := strings.TrimPrefix(amount.Coefficient().String(), "-")
	if coefficient == "0" {
		return nil
	}
	exp := int64(amount.Exponent())
	if exp < -maxFractionDigits {
		return &InvalidInputError{Field: field, Value: compactString(coefficient, exp), Reason: "has too many decimal places"}
	}
	if int64(len(coefficient))+exp > maxIntegerDigits || amount.Abs().GreaterThan(MaxAmount) {
		return &InvalidInputError{Field: field, Value: compactString(coefficient, exp), Reason: "cannot exceed " + MaxAmount.String()}
	}
	return nil
}

func compactString(coefficient string, exp int64) string {
	if exp == 0 {
		return coefficient
	}
	return coefficient + "e" + strconv.FormatInt(exp, 10)
}

// SalaryInput is a validated income figure plus the personal flags of the employee
type SalaryInput struct {
	Income                  decimal.Decimal
	IncludeHolidayAllowance bool
	SocialSecurity          bool
	ReachedRetirementAge    bool
	HoursPerWeek            decimal.Decimal
}

// InputOption customises a SalaryInput
type InputOption func(*SalaryInput)

// WithHolidayAllowance marks the income as including the 8% holiday allowance
func WithHolidayAllowance(include bool) InputOption {
	return func(in *SalaryInput) { in.IncludeHolidayAllowance = include }
}

// WithSocialSecurity toggles social security contributions (default on)
func WithSocialSecurity(applies bool) InputOption {
	return func(in *SalaryInput) { in.SocialSecurity = applies }
}

// WithRetirementAge marks the employee as having reached AOW age
func WithRetirementAge(reached bool) InputOption {
	return func(in *SalaryInput) { in.ReachedRetirementAge = reached }
}

// WithHoursPerWeek sets the contractual working hours (default 40)
func WithHoursPerWeek(hours decimal.Decimal) InputOption {
	return func(in *SalaryInput) { in.HoursPerWeek = hours }
}

// NewSalaryInput builds and validates a salary input
func NewSalaryInput(income decimal.Decimal, opts ...InputOption) (SalaryInput, error) {
	in := SalaryInput{
		Income:         income,
		SocialSecurity: true,
		HoursPerWeek:   decimal.NewFromInt(40),
	}
	for _, opt := range opts {
		opt(&in)
	}
	if err := in.Validate(); err != nil {
		return SalaryInput{}, err
	}
	return in, nil
}

// Validate rejects negative or oversized income and impossible working hours
func (in SalaryInput) Validate() error {
	if err := CheckAmount("income", in.Income); err != nil {
		return err
	}
	if err := CheckAmount("working hours", in.HoursPerWeek); err != nil {
		return err
	}
	if in.Income.IsNegative() {
		return &InvalidInputError{Field: "income", Value: in.Income.StringFixed(2), Reason: "cannot be negative"}
	}
	if in.HoursPerWeek.IsNegative() || in.HoursPerWeek.GreaterThan(maxHoursPerWeek) {
		return &InvalidInputError{Field: "working hours", Value: in.HoursPerWeek.StringFixed(2), Reason: "must be between 0 and 168 per week"}
	}
	return nil
}

// WithIncome returns a copy with a different income, validated again
func (in SalaryInput) WithIncome(income decimal.Decimal) (SalaryInput, error) {
	out := in
	out.Income = income
	if err := out.Validate(); err != nil {
		return SalaryInput{}, err
	}
	return out, nil
}
