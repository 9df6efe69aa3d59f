package breakeven

import (
	"context"
	"fmt"

	"github.com/rgehrsitz/nlpay/internal/domain"
	"github.com/rgehrsitz/nlpay/internal/transform"
	"github.com/shopspring/decimal"
)

// SolveScenarios solves the same target net for each scenario and picks
// the one needing the lowest gross income
func (s *Solver) SolveScenarios(ctx context.Context, targetNet decimal.Decimal, scenarios []*domain.Scenario) (*MultiResult, error) {
	if len(scenarios) == 0 {
		return nil, NewBreakEvenError("solve", "at least one scenario is required", nil)
	}

	multi := &MultiResult{
		TargetNet: targetNet,
		Period:    scenarios[0].Period.String(),
		Results:   make([]SolveResult, 0, len(scenarios)),
	}

	for _, scenario := range scenarios {
		result, err := s.Solve(ctx, SolveRequest{Base: scenario, TargetNet: targetNet})
		if err != nil {
			return nil, NewBreakEvenError("solve", fmt.Sprintf("scenario %s", scenario.Name), err)
		}
		multi.Results = append(multi.Results, *result)
	}

	for i := range multi.Results {
		if multi.Cheapest == nil ||
			multi.Results[i].RequiredGrossYear.LessThan(multi.Cheapest.RequiredGrossYear) {
			multi.Cheapest = &multi.Results[i]
		}
	}

	multi.Recommendations = s.generateRecommendations(multi)
	return multi, nil
}

// SolveForYears solves the request under each tax year
func (s *Solver) SolveForYears(ctx context.Context, req SolveRequest, years []int) (*MultiResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	scenarios := make([]*domain.Scenario, 0, len(years))
	for _, year := range years {
		scenario, err := transform.ApplyTransforms(req.Base, []transform.ScenarioTransform{&transform.SetYear{Year: year}})
		if err != nil {
			return nil, err
		}
		scenario.Name = fmt.Sprintf("%s_%d", req.Base.Name, year)
		scenarios = append(scenarios, scenario)
	}
	return s.SolveScenarios(ctx, req.TargetNet, scenarios)
}

func (s *Solver) generateRecommendations(result *MultiResult) []string {
	var recommendations []string
	if result.Cheapest == nil {
		return recommendations
	}

	recommendations = append(recommendations,
		fmt.Sprintf("Lowest Gross Needed: %s requires %s per %s",
			result.Cheapest.Scenario, result.Cheapest.RequiredGross.StringFixed(2), result.Period))

	for _, r := range result.Results {
		if r.Scenario == result.Cheapest.Scenario {
			continue
		}
		extra := r.RequiredGrossYear.Sub(result.Cheapest.RequiredGrossYear)
		if extra.IsPositive() {
			recommendations = append(recommendations,
				fmt.Sprintf("%s needs %s more gross per year", r.Scenario, extra.StringFixed(2)))
		}
	}
	return recommendations
}
