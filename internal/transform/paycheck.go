package transform

import (
	"fmt"

	"github.com/rgehrsitz/nlpay/internal/domain"
	"github.com/shopspring/decimal"
)

func requireBase(name string, base *domain.Scenario) error {
	if base == nil {
		return NewTransformError(name, "validate", "base scenario cannot be nil", nil)
	}
	return nil
}

// SetRuling applies the 30% ruling of the given type
type SetRuling struct {
	Type domain.RulingType
}

func (sr *SetRuling) Name() string { return "set_ruling" }

func (sr *SetRuling) Description() string {
	return fmt.Sprintf("Apply the 30%% ruling (%s)", sr.Type)
}

func (sr *SetRuling) Validate(base *domain.Scenario) error {
	return requireBase(sr.Name(), base)
}

func (sr *SetRuling) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Ruling = domain.RulingEnabled(sr.Type)
	return modified, nil
}

// RemoveRuling turns the 30% ruling off
type RemoveRuling struct{}

func (rr *RemoveRuling) Name() string        { return "remove_ruling" }
func (rr *RemoveRuling) Description() string { return "Calculate without the 30% ruling" }

func (rr *RemoveRuling) Validate(base *domain.Scenario) error {
	return requireBase(rr.Name(), base)
}

func (rr *RemoveRuling) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Ruling = domain.RulingDisabled()
	return modified, nil
}

// SetRetirementAge marks whether the employee has reached AOW age
type SetRetirementAge struct {
	Reached bool
}

func (s *SetRetirementAge) Name() string { return "set_retirement_age" }

func (s *SetRetirementAge) Description() string {
	if s.Reached {
		return "Employee has reached retirement age"
	}
	return "Employee is below retirement age"
}

func (s *SetRetirementAge) Validate(base *domain.Scenario) error {
	return requireBase(s.Name(), base)
}

func (s *SetRetirementAge) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Input.ReachedRetirementAge = s.Reached
	return modified, nil
}

// SetSocialSecurity toggles social security contributions
type SetSocialSecurity struct {
	Applies bool
}

func (s *SetSocialSecurity) Name() string { return "set_social_security" }

func (s *SetSocialSecurity) Description() string {
	if s.Applies {
		return "Pay social security contributions"
	}
	return "No social security contributions"
}

func (s *SetSocialSecurity) Validate(base *domain.Scenario) error {
	return requireBase(s.Name(), base)
}

func (s *SetSocialSecurity) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Input.SocialSecurity = s.Applies
	return modified, nil
}

// SetHolidayAllowance marks the income as including the 8% holiday allowance
type SetHolidayAllowance struct {
	Included bool
}

func (s *SetHolidayAllowance) Name() string { return "set_holiday_allowance" }

func (s *SetHolidayAllowance) Description() string {
	if s.Included {
		return "Income includes holiday allowance"
	}
	return "Income excludes holiday allowance"
}

func (s *SetHolidayAllowance) Validate(base *domain.Scenario) error {
	return requireBase(s.Name(), base)
}

func (s *SetHolidayAllowance) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Input.IncludeHolidayAllowance = s.Included
	return modified, nil
}

// SetYear calculates the scenario under another tax year's rates.
// Whether the year is supported is left to the rate provider.
type SetYear struct {
	Year int
}

func (sy *SetYear) Name() string        { return "set_year" }
func (sy *SetYear) Description() string { return fmt.Sprintf("Use the %d tax tables", sy.Year) }

func (sy *SetYear) Validate(base *domain.Scenario) error {
	if err := requireBase(sy.Name(), base); err != nil {
		return err
	}
	if sy.Year <= 0 {
		return NewTransformError(sy.Name(), "validate", fmt.Sprintf("year must be positive, got %d", sy.Year), nil)
	}
	return nil
}

func (sy *SetYear) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Year = sy.Year
	return modified, nil
}

// AdjustIncome scales the income by a percentage, e.g. 5 for a 5% raise
type AdjustIncome struct {
	Percent decimal.Decimal
}

func (ai *AdjustIncome) Name() string { return "adjust_income" }

func (ai *AdjustIncome) Description() string {
	return fmt.Sprintf("Change income by %s%%", ai.Percent.String())
}

func (ai *AdjustIncome) Validate(base *domain.Scenario) error {
	if err := requireBase(ai.Name(), base); err != nil {
		return err
	}
	if ai.Percent.LessThan(decimal.NewFromInt(-100)) {
		return NewTransformError(ai.Name(), "validate", fmt.Sprintf("percent must be at least -100, got %s", ai.Percent), nil)
	}
	return nil
}

func (ai *AdjustIncome) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	factor := decimal.NewFromInt(1).Add(ai.Percent.Div(decimal.NewFromInt(100)))
	input, err := base.Input.WithIncome(base.Input.Income.Mul(factor).Round(2))
	if err != nil {
		return nil, NewTransformError(ai.Name(), "apply", "adjusted income is invalid", err)
	}
	modified := base.DeepCopy()
	modified.Input = input
	return modified, nil
}

// SetHoursPerWeek changes the contractual working hours
type SetHoursPerWeek struct {
	Hours decimal.Decimal
}

func (sh *SetHoursPerWeek) Name() string { return "set_hours" }

func (sh *SetHoursPerWeek) Description() string {
	return fmt.Sprintf("Work %s hours per week", sh.Hours.String())
}

func (sh *SetHoursPerWeek) Validate(base *domain.Scenario) error {
	if err := requireBase(sh.Name(), base); err != nil {
		return err
	}
	probe := base.Input
	probe.HoursPerWeek = sh.Hours
	if err := probe.Validate(); err != nil {
		return NewTransformError(sh.Name(), "validate", "invalid working hours", err)
	}
	return nil
}

func (sh *SetHoursPerWeek) Apply(base *domain.Scenario) (*domain.Scenario, error) {
	modified := base.DeepCopy()
	modified.Input.HoursPerWeek = sh.Hours
	return modified, nil
}
