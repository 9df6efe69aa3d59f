package breakeven

import (
	"fmt"

	"github.com/rgehrsitz/nlpay/internal/domain"
	"github.com/shopspring/decimal"
)

// SolveRequest asks for the gross income that yields TargetNet. The base
// scenario supplies everything except the income: period, year, ruling
// and the employee flags. TargetNet is expressed in the scenario's period.
type SolveRequest struct {
	Base      *domain.Scenario `json:"-"`
	TargetNet decimal.Decimal  `json:"targetNet"`
}

// Validate checks the request before solving
func (r SolveRequest) Validate() error {
	if r.Base == nil {
		return fmt.Errorf("base scenario is required")
	}
	if err := domain.CheckAmount("target net", r.TargetNet); err != nil {
		return err
	}
	if r.TargetNet.IsNegative() {
		return &domain.InvalidInputError{Field: "target net", Value: r.TargetNet.StringFixed(2), Reason: "cannot be negative"}
	}
	return r.Base.Input.Validate()
}

// SolveResult contains the gross income found for one scenario
type SolveResult struct {
	Request  SolveRequest           `json:"request"`
	Scenario string                 `json:"scenario"`
	Year     int                    `json:"year"`
	Period   string                 `json:"period"`
	Result   *domain.PaycheckResult `json:"-"`

	Success         bool   `json:"success"`
	Iterations      int    `json:"iterations"`
	ConvergenceInfo string `json:"convergenceInfo,omitempty"`

	RequiredGross     decimal.Decimal `json:"requiredGross"`     // per period
	RequiredGrossYear decimal.Decimal `json:"requiredGrossYear"` // per year
	AchievedNet       decimal.Decimal `json:"achievedNet"`       // per period
	Difference        decimal.Decimal `json:"difference"`        // achieved minus target
	EffectiveTaxRate  decimal.Decimal `json:"effectiveTaxRate"`
}

// MultiResult holds one solve per scenario for the same target net
type MultiResult struct {
	TargetNet       decimal.Decimal `json:"targetNet"`
	Period          string          `json:"period"`
	Results         []SolveResult   `json:"results"`
	Cheapest        *SolveResult    `json:"cheapest,omitempty"`
	Recommendations []string        `json:"recommendations"`
}

// SolverOptions configures the search
type SolverOptions struct {
	MaxIterations int
	Tolerance     decimal.Decimal // width of the final gross interval
	MaxGross      decimal.Decimal // per period, the search gives up above it
}

// DefaultSolverOptions returns options accurate to the cent
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		MaxIterations: 200,
		Tolerance:     decimal.NewFromFloat(0.01),
		MaxGross:      domain.MaxAmount,
	}
}

// BreakEvenError represents an error during solving
type BreakEvenError struct {
	Operation string
	Reason    string
	Err       error
}

func (e *BreakEvenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("break-even %s failed: %s: %v", e.Operation, e.Reason, e.Err)
	}
	return fmt.Sprintf("break-even %s failed: %s", e.Operation, e.Reason)
}

func (e *BreakEvenError) Unwrap() error {
	return e.Err
}

// NewBreakEvenError creates a new break-even error
func NewBreakEvenError(operation, reason string, err error) error {
	return &BreakEvenError{
		Operation: operation,
		Reason:    reason,
		Err:       err,
	}
}
