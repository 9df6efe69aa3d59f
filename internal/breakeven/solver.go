package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/nlpay/internal/calculation"
	"github.com/rgehrsitz/nlpay/internal/domain"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// Solver finds gross incomes for a target net paycheck
type Solver struct {
	CalcEngine *calculation.CalculationEngine
	Options    SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(calcEngine *calculation.CalculationEngine, options SolverOptions) *Solver {
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.CalculationEngine) *Solver {
	return NewSolver(calcEngine, DefaultSolverOptions())
}

// Solve returns the lowest gross income, to within the tolerance, whose
// net paycheck reaches the target. The upper bound doubles until it is
// reached and the interval is then bisected. Net income is not strictly
// monotonic around the ruling thresholds, so the answer is the first
// crossing the bisection lands on.
func (s *Solver) Solve(ctx context.Context, req SolveRequest) (*SolveResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result := &SolveResult{
		Request:  req,
		Scenario: req.Base.Name,
		Year:     req.Base.Year,
		Period:   req.Base.Period.String(),
	}

	if req.TargetNet.IsZero() {
		return s.finish(result, req, decimal.Zero, "Zero net needs zero gross")
	}

	low := decimal.Zero
	high := req.TargetNet
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		net, _, err := s.evaluate(req.Base, high)
		if err != nil {
			return nil, err
		}
		result.Iterations++
		if net.GreaterThanOrEqual(req.TargetNet) {
			break
		}
		if result.Iterations >= s.Options.MaxIterations {
			return nil, NewBreakEvenError("solve", fmt.Sprintf("max iterations (%d) reached while bracketing", s.Options.MaxIterations), nil)
		}
		low = high
		high = high.Mul(two)
		if high.GreaterThan(s.Options.MaxGross) {
			return nil, NewBreakEvenError("solve",
				fmt.Sprintf("target net %s is not reachable below a gross of %s", req.TargetNet.StringFixed(2), s.Options.MaxGross.StringFixed(2)), nil)
		}
	}

	for high.Sub(low).GreaterThan(s.Options.Tolerance) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if result.Iterations >= s.Options.MaxIterations {
			return s.finish(result, req, high, fmt.Sprintf("Max iterations (%d) reached", s.Options.MaxIterations))
		}

		mid := low.Add(high).Div(two).Round(2)
		if mid.Equal(low) || mid.Equal(high) {
			break
		}
		net, _, err := s.evaluate(req.Base, mid)
		if err != nil {
			return nil, err
		}
		result.Iterations++
		if net.GreaterThanOrEqual(req.TargetNet) {
			high = mid
		} else {
			low = mid
		}
	}

	return s.finish(result, req, high, "Binary search converged")
}

// finish recalculates the paycheck at the chosen gross and fills in the result
func (s *Solver) finish(result *SolveResult, req SolveRequest, gross decimal.Decimal, info string) (*SolveResult, error) {
	net, paycheck, err := s.evaluate(req.Base, gross)
	if err != nil {
		return nil, err
	}

	result.Result = paycheck
	result.RequiredGross = gross.Round(2)
	result.RequiredGrossYear = paycheck.GrossYear
	result.AchievedNet = net
	result.Difference = net.Sub(req.TargetNet)
	result.EffectiveTaxRate = paycheck.EffectiveTaxRate()
	result.Success = net.GreaterThanOrEqual(req.TargetNet)
	result.ConvergenceInfo = info
	return result, nil
}

// evaluate calculates the scenario at the given gross and returns the net
// for the scenario's period
func (s *Solver) evaluate(base *domain.Scenario, gross decimal.Decimal) (decimal.Decimal, *domain.PaycheckResult, error) {
	input, err := base.Input.WithIncome(gross)
	if err != nil {
		return decimal.Zero, nil, err
	}
	paycheck, err := s.CalcEngine.Calculate(input, base.Period, base.Year, base.Ruling)
	if err != nil {
		return decimal.Zero, nil, err
	}
	return NetForPeriod(paycheck, base.Period), paycheck, nil
}

// NetForPeriod returns the net income of a result expressed in the given period
func NetForPeriod(r *domain.PaycheckResult, period domain.Period) decimal.Decimal {
	switch period {
	case domain.PeriodMonth:
		return r.NetMonth()
	case domain.PeriodWeek:
		return r.NetWeek()
	case domain.PeriodDay:
		return r.NetDay()
	case domain.PeriodHour:
		return r.NetHour()
	default:
		return r.NetYear
	}
}
