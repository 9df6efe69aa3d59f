package breakeven

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/nlpay/internal/calculation"
	"github.com/rgehrsitz/nlpay/internal/config"
	"github.com/rgehrsitz/nlpay/internal/domain"
)

func newTestSolver(t *testing.T) *Solver {
	t.Helper()
	provider, err := config.LoadDefault()
	require.NoError(t, err)
	return NewDefaultSolver(calculation.NewCalculationEngine(provider))
}

func scenario(t *testing.T, period domain.Period, year int, ruling domain.RulingOptions, opts ...domain.InputOption) *domain.Scenario {
	t.Helper()
	input, err := domain.NewSalaryInput(decimal.Zero, opts...)
	require.NoError(t, err)
	return &domain.Scenario{Name: "base", Input: input, Period: period, Year: year, Ruling: ruling}
}

func TestNewSolver(t *testing.T) {
	calcEngine := &calculation.CalculationEngine{}
	options := DefaultSolverOptions()

	solver := NewSolver(calcEngine, options)
	require.NotNil(t, solver)
	assert.Same(t, calcEngine, solver.CalcEngine)
	assert.Equal(t, options, solver.Options)

	solver = NewDefaultSolver(calcEngine)
	assert.Equal(t, 200, solver.Options.MaxIterations)
	assert.True(t, solver.Options.Tolerance.Equal(decimal.RequireFromString("0.01")))
}

func TestSolve_YearlyTarget(t *testing.T) {
	solver := newTestSolver(t)
	base := scenario(t, domain.PeriodYear, 2025, domain.RulingDisabled())

	result, err := solver.Solve(context.Background(), SolveRequest{Base: base, TargetNet: decimal.RequireFromString("43712.80")})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "Binary search converged", result.ConvergenceInfo)
	assert.InDelta(t, 60000.0, result.RequiredGross.InexactFloat64(), 0.05)
	assert.True(t, result.AchievedNet.GreaterThanOrEqual(decimal.RequireFromString("43712.80")))
	assert.False(t, result.Difference.IsNegative())
	assert.Equal(t, 2025, result.Year)
	assert.Equal(t, "year", result.Period)
	assert.Greater(t, result.Iterations, 1)
	require.NotNil(t, result.Result)
}

func TestSolve_MonthlyTarget(t *testing.T) {
	solver := newTestSolver(t)
	base := scenario(t, domain.PeriodMonth, 2025, domain.RulingDisabled())

	result, err := solver.Solve(context.Background(), SolveRequest{Base: base, TargetNet: decimal.RequireFromString("3642.73")})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.InDelta(t, 5000.0, result.RequiredGross.InexactFloat64(), 0.05)
	assert.InDelta(t, 60000.0, result.RequiredGrossYear.InexactFloat64(), 1.0)
	assert.True(t, result.AchievedNet.GreaterThanOrEqual(decimal.RequireFromString("3642.73")))
}

func TestSolve_RulingNeedsLessGross(t *testing.T) {
	solver := newTestSolver(t)
	target := decimal.NewFromInt(60000)

	without, err := solver.Solve(context.Background(), SolveRequest{
		Base:      scenario(t, domain.PeriodYear, 2025, domain.RulingDisabled()),
		TargetNet: target,
	})
	require.NoError(t, err)

	with, err := solver.Solve(context.Background(), SolveRequest{
		Base:      scenario(t, domain.PeriodYear, 2025, domain.RulingEnabled(domain.RulingNormal)),
		TargetNet: target,
	})
	require.NoError(t, err)

	assert.True(t, with.RequiredGross.LessThan(without.RequiredGross))
	assert.True(t, with.Result.TaxFreeYear.IsPositive())
}

func TestSolve_ZeroTarget(t *testing.T) {
	solver := newTestSolver(t)
	result, err := solver.Solve(context.Background(), SolveRequest{
		Base:      scenario(t, domain.PeriodYear, 2025, domain.RulingDisabled()),
		TargetNet: decimal.Zero,
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.True(t, result.RequiredGross.IsZero())
	assert.Equal(t, 0, result.Iterations)
}

func TestSolve_MaxIterations(t *testing.T) {
	solver := newTestSolver(t)
	solver.Options.MaxIterations = 3

	result, err := solver.Solve(context.Background(), SolveRequest{
		Base:      scenario(t, domain.PeriodYear, 2025, domain.RulingDisabled()),
		TargetNet: decimal.RequireFromString("43712.80"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Max iterations (3) reached", result.ConvergenceInfo)
	assert.Equal(t, 3, result.Iterations)
	assert.True(t, result.Success, "the upper bound always reaches the target")
}

func TestSolve_Errors(t *testing.T) {
	solver := newTestSolver(t)
	ctx := context.Background()

	_, err := solver.Solve(ctx, SolveRequest{TargetNet: decimal.NewFromInt(100)})
	assert.Error(t, err)

	_, err = solver.Solve(ctx, SolveRequest{
		Base:      scenario(t, domain.PeriodYear, 2025, domain.RulingDisabled()),
		TargetNet: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = solver.Solve(ctx, SolveRequest{
		Base:      scenario(t, domain.PeriodYear, 2025, domain.RulingDisabled()),
		TargetNet: decimal.RequireFromString("1e2000000"),
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "target net cannot exceed")

	_, err = solver.Solve(ctx, SolveRequest{
		Base:      scenario(t, domain.PeriodYear, 1999, domain.RulingDisabled()),
		TargetNet: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, domain.ErrUnsupportedYear)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = solver.Solve(cancelled, SolveRequest{
		Base:      scenario(t, domain.PeriodYear, 2025, domain.RulingDisabled()),
		TargetNet: decimal.NewFromInt(100),
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolve_UnreachableTarget(t *testing.T) {
	solver := newTestSolver(t)
	base := scenario(t, domain.PeriodHour, 2025, domain.RulingDisabled(), domain.WithHoursPerWeek(decimal.Zero))

	_, err := solver.Solve(context.Background(), SolveRequest{Base: base, TargetNet: decimal.NewFromInt(10)})
	require.Error(t, err)

	var beErr *BreakEvenError
	require.True(t, errors.As(err, &beErr))
	assert.Equal(t, "solve", beErr.Operation)
	assert.Contains(t, err.Error(), "not reachable")
}

func TestSolveForYears(t *testing.T) {
	solver := newTestSolver(t)
	base := scenario(t, domain.PeriodYear, 2025, domain.RulingDisabled())

	multi, err := solver.SolveForYears(context.Background(), SolveRequest{Base: base, TargetNet: decimal.NewFromInt(40000)}, []int{2025, 2026})
	require.NoError(t, err)

	require.Len(t, multi.Results, 2)
	assert.Equal(t, "base_2025", multi.Results[0].Scenario)
	assert.Equal(t, 2026, multi.Results[1].Year)
	require.NotNil(t, multi.Cheapest)
	assert.NotEmpty(t, multi.Recommendations)
	assert.Contains(t, multi.Recommendations[0], "Lowest Gross Needed: "+multi.Cheapest.Scenario)

	_, err = solver.SolveForYears(context.Background(), SolveRequest{Base: base, TargetNet: decimal.NewFromInt(40000)}, []int{2025, 1999})
	assert.ErrorIs(t, err, domain.ErrUnsupportedYear)

	_, err = solver.SolveScenarios(context.Background(), decimal.NewFromInt(1), nil)
	assert.Error(t, err)
}

func TestNetForPeriod(t *testing.T) {
	r := &domain.PaycheckResult{
		NetYear:      decimal.NewFromInt(52000),
		WorkingWeeks: 52,
		WorkingDays:  260,
		HoursPerWeek: decimal.NewFromInt(40),
	}
	assert.Equal(t, "52000", NetForPeriod(r, domain.PeriodYear).String())
	assert.Equal(t, "4333.33", NetForPeriod(r, domain.PeriodMonth).String())
	assert.Equal(t, "1000", NetForPeriod(r, domain.PeriodWeek).String())
	assert.Equal(t, "200", NetForPeriod(r, domain.PeriodDay).String())
	assert.Equal(t, "25", NetForPeriod(r, domain.PeriodHour).String())
}

func TestFormatters(t *testing.T) {
	solver := newTestSolver(t)
	base := scenario(t, domain.PeriodYear, 2025, domain.RulingDisabled())
	req := SolveRequest{Base: base, TargetNet: decimal.NewFromInt(40000)}

	result, err := solver.Solve(context.Background(), req)
	require.NoError(t, err)

	table := (&TableFormatter{}).Format(result)
	assert.Contains(t, table, "GROSS INCOME FOR TARGET NET")
	assert.Contains(t, table, "Target Net:          €40,000.00")
	assert.Contains(t, table, "✓ Converged")

	multi, err := solver.SolveForYears(context.Background(), req, []int{2025, 2026})
	require.NoError(t, err)
	table = (&TableFormatter{}).FormatMulti(multi)
	assert.Contains(t, table, "BY SCENARIO")
	assert.Contains(t, table, "base_2026")
	assert.Contains(t, table, "RECOMMENDATIONS")

	data, err := (&JSONFormatter{Pretty: true}).Format(result)
	require.NoError(t, err)
	assert.Contains(t, data, `"requiredGross":`)
	assert.Contains(t, data, `"targetNet": "40000"`)

	data, err = (&JSONFormatter{}).FormatMulti(multi)
	require.NoError(t, err)
	assert.Contains(t, data, `"cheapest":`)
}

func TestTableFormatterHelpers(t *testing.T) {
	tf := &TableFormatter{}
	assert.Equal(t, "1.50M", tf.formatShort(decimal.NewFromInt(1500000)))
	assert.Equal(t, "60.0K", tf.formatShort(decimal.NewFromInt(60000)))
	assert.Equal(t, "999", tf.formatShort(decimal.NewFromInt(999)))
	assert.Equal(t, "+", tf.deltaSymbol(decimal.NewFromInt(1)))
	assert.Equal(t, "-", tf.deltaSymbol(decimal.NewFromInt(-1)))
	assert.Equal(t, "", tf.deltaSymbol(decimal.Zero))
	assert.Equal(t, "abcdefg...", tf.truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "⚠ Did not converge", tf.formatStatus(false))
}

func TestBreakEvenError(t *testing.T) {
	inner := errors.New("boom")
	err := NewBreakEvenError("solve", "bad input", inner)
	assert.Equal(t, "break-even solve failed: bad input: boom", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "break-even solve failed: bad input", NewBreakEvenError("solve", "bad input", nil).Error())
}
