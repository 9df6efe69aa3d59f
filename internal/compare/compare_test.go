package compare

import (
	"context"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/nlpay/internal/calculation"
	"github.com/rgehrsitz/nlpay/internal/config"
	"github.com/rgehrsitz/nlpay/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCompareEngine(t *testing.T) *CompareEngine {
	t.Helper()
	provider, err := config.LoadDefault()
	require.NoError(t, err)
	return NewCompareEngine(calculation.NewCalculationEngine(provider))
}

func baseScenario(t *testing.T, income int64) *domain.Scenario {
	t.Helper()
	input, err := domain.NewSalaryInput(decimal.NewFromInt(income))
	require.NoError(t, err)
	return &domain.Scenario{
		Name:   "base",
		Input:  input,
		Period: domain.PeriodYear,
		Year:   2025,
		Ruling: domain.RulingDisabled(),
	}
}

func TestCompare_Templates(t *testing.T) {
	engine := newTestCompareEngine(t)

	compSet, err := engine.Compare(context.Background(), baseScenario(t, 80000), CompareOptions{
		Templates: []string{"ruling", "year_2026"},
	})
	require.NoError(t, err)

	assert.Equal(t, "base", compSet.BaseScenarioName)
	require.NotNil(t, compSet.BaseResult)
	assert.Equal(t, "none", compSet.BaseResult.Ruling)
	assert.True(t, compSet.BaseResult.NetDiffFromBase.IsZero())

	require.Len(t, compSet.AlternativeResults, 2)

	ruling := compSet.AlternativeResults[0]
	assert.Equal(t, "base_ruling", ruling.ScenarioName)
	assert.Equal(t, "Apply the normal 30% ruling", ruling.Description)
	assert.Equal(t, "normal", ruling.Ruling)
	assert.True(t, ruling.TaxFreeYear.Equal(decimal.NewFromInt(24000)))
	assert.True(t, ruling.NetDiffFromBase.IsPositive())
	assert.True(t, ruling.TaxDiffFromBase.IsPositive(), "less income tax under the ruling")
	assert.True(t, ruling.NetDiffFromBase.Equal(ruling.NetYear.Sub(compSet.BaseResult.NetYear)))

	nextYear := compSet.AlternativeResults[1]
	assert.Equal(t, 2026, nextYear.Year)
	assert.Equal(t, 2026, nextYear.Result.Year)

	require.NotEmpty(t, compSet.Recommendations)
	assert.Contains(t, compSet.Recommendations[0], "Highest Net Income: base_ruling")
}

func TestCompare_Transforms(t *testing.T) {
	engine := newTestCompareEngine(t)

	compSet, err := engine.Compare(context.Background(), baseScenario(t, 60000), CompareOptions{
		Transforms: []string{"set_social_security:applies=false", "adjust_income:percent=10"},
	})
	require.NoError(t, err)
	require.Len(t, compSet.AlternativeResults, 2)

	noSocial := compSet.AlternativeResults[0]
	assert.Equal(t, "base_set_social_security", noSocial.ScenarioName)
	assert.True(t, noSocial.Result.SocialTax.IsZero())

	raise := compSet.AlternativeResults[1]
	assert.True(t, raise.GrossYear.Equal(decimal.NewFromInt(66000)))
	assert.True(t, raise.NetDiffFromBase.IsPositive())
	assert.True(t, raise.TaxDiffFromBase.IsNegative(), "a raise pays more tax")
}

func TestCompare_Errors(t *testing.T) {
	engine := newTestCompareEngine(t)
	ctx := context.Background()

	_, err := engine.Compare(ctx, nil, CompareOptions{})
	assert.Error(t, err)

	_, err = engine.Compare(ctx, baseScenario(t, 60000), CompareOptions{Templates: []string{"nope"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "template nope not found")

	_, err = engine.Compare(ctx, baseScenario(t, 60000), CompareOptions{Transforms: []string{"bogus"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid transform")

	_, err = engine.Compare(ctx, baseScenario(t, 60000), CompareOptions{Transforms: []string{"set_year:year=1999"}})
	assert.ErrorIs(t, err, domain.ErrUnsupportedYear)

	unsupported := baseScenario(t, 60000)
	unsupported.Year = 1999
	_, err = engine.Compare(ctx, unsupported, CompareOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to calculate base scenario")
}

func TestCompare_CancelledContext(t *testing.T) {
	engine := newTestCompareEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Compare(ctx, baseScenario(t, 60000), CompareOptions{Templates: []string{"ruling"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompareScenarios(t *testing.T) {
	engine := newTestCompareEngine(t)
	base := baseScenario(t, 60000)
	retired := base.DeepCopy()
	retired.Name = "retired"
	retired.Input.ReachedRetirementAge = true

	compSet, err := engine.CompareScenarios(context.Background(), base, []*domain.Scenario{retired})
	require.NoError(t, err)
	require.Len(t, compSet.AlternativeResults, 1)
	assert.Equal(t, "retired", compSet.AlternativeResults[0].ScenarioName)
	assert.True(t, compSet.AlternativeResults[0].NetDiffFromBase.IsPositive(), "lower contributions past retirement age")
}

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	calc := NewMetricsCalculator()

	base := ComparisonResult{NetYear: decimal.NewFromInt(40000), NetMonth: decimal.RequireFromString("3333.33"), IncomeTax: decimal.NewFromInt(-20000)}
	alt := ComparisonResult{NetYear: decimal.NewFromInt(44000), NetMonth: decimal.RequireFromString("3666.67"), IncomeTax: decimal.NewFromInt(-16000)}

	got := calc.CalculateComparison(alt, base)
	assert.True(t, got.NetDiffFromBase.Equal(decimal.NewFromInt(4000)))
	assert.True(t, got.NetMonthDiffFromBase.Equal(decimal.RequireFromString("333.34")))
	assert.True(t, got.NetPctFromBase.Equal(decimal.NewFromInt(10)))
	assert.True(t, got.TaxDiffFromBase.Equal(decimal.NewFromInt(4000)))

	zeroBase := calc.CalculateComparison(alt, ComparisonResult{})
	assert.True(t, zeroBase.NetPctFromBase.IsZero(), "no percentage against a zero base")
}

func TestGenerateRecommendations(t *testing.T) {
	assert.Empty(t, GenerateRecommendations(&ComparisonSet{}))

	base := &ComparisonResult{ScenarioName: "base", NetYear: decimal.NewFromInt(40000), IncomeTax: decimal.NewFromInt(-20000)}
	compSet := &ComparisonSet{
		BaseResult: base,
		AlternativeResults: []ComparisonResult{
			{ScenarioName: "worse", NetYear: decimal.NewFromInt(39000), IncomeTax: decimal.NewFromInt(-21000)},
		},
	}
	assert.Empty(t, GenerateRecommendations(compSet), "nothing beats the base")

	compSet.AlternativeResults = append(compSet.AlternativeResults, ComparisonResult{
		ScenarioName:         "better",
		NetYear:              decimal.NewFromInt(42000),
		NetMonthDiffFromBase: decimal.RequireFromString("166.67"),
		IncomeTax:            decimal.NewFromInt(-18000),
		TaxDiffFromBase:      decimal.NewFromInt(2000),
	})
	recs := GenerateRecommendations(compSet)
	require.Len(t, recs, 2)
	assert.Equal(t, "Highest Net Income: better pays €166.67 more per month than the base scenario", recs[0])
	assert.Equal(t, "Lowest Taxes: better saves €2000.00 in income tax per year", recs[1])
}

func sampleComparisonSet(t *testing.T) *ComparisonSet {
	t.Helper()
	compSet, err := newTestCompareEngine(t).Compare(context.Background(), baseScenario(t, 80000), CompareOptions{
		Templates: []string{"ruling", "retired"},
	})
	require.NoError(t, err)
	return compSet
}

func TestTableFormatter_Format(t *testing.T) {
	formatter := &TableFormatter{}
	result := formatter.Format(sampleComparisonSet(t))

	assert.Contains(t, result, "PAYCHECK SCENARIO COMPARISON")
	assert.Contains(t, result, "Base Scenario: base")
	assert.Contains(t, result, "base (base)")
	assert.Contains(t, result, "base_ruling")
	assert.Contains(t, result, "COMPARISON TO BASE")
	assert.Contains(t, result, "Tax Free:     €24,000.00")
	assert.Contains(t, result, "RECOMMENDATIONS")
}

func TestTableFormatter_Helpers(t *testing.T) {
	tf := &TableFormatter{}

	assert.Equal(t, "€1.50M", tf.formatDecimal(decimal.NewFromInt(1500000)))
	assert.Equal(t, "€43.7K", tf.formatDecimal(decimal.RequireFromString("43712.80")))
	assert.Equal(t, "€-16.3K", tf.formatDecimal(decimal.RequireFromString("-16287.20")))
	assert.Equal(t, "€500", tf.formatDecimal(decimal.NewFromInt(500)))
	assert.Equal(t, "+", tf.deltaSymbol(decimal.NewFromInt(1)))
	assert.Equal(t, "", tf.deltaSymbol(decimal.NewFromInt(-1)))
	assert.Equal(t, "short", tf.truncate("short", 10))
	assert.Equal(t, "abcdefg...", tf.truncate("abcdefghijklmnop", 10))

	compact := tf.FormatCompact(&ComparisonSet{
		BaseScenarioName: "base",
		AlternativeResults: []ComparisonResult{
			{ScenarioName: "same"},
			{ScenarioName: "up", NetMonthDiffFromBase: decimal.NewFromInt(250)},
		},
	})
	assert.Equal(t, "Base: base | same: = | up: +€250.00/month", compact)
}

func TestCSVFormatter_Format(t *testing.T) {
	formatter := &CSVFormatter{}
	result, err := formatter.Format(sampleComparisonSet(t))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(result), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Scenario,Type,Year,Ruling"))
	assert.True(t, strings.HasPrefix(lines[1], "base,base,2025,none,80000.00"))
	assert.True(t, strings.HasPrefix(lines[2], "base_ruling,alternative,2025,normal,80000.00,24000.00"))
}

func TestJSONFormatter_Format(t *testing.T) {
	compSet := sampleComparisonSet(t)

	for _, pretty := range []bool{false, true} {
		formatter := &JSONFormatter{Pretty: pretty}
		result, err := formatter.Format(compSet)
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(result), &decoded))
		assert.Equal(t, "base", decoded["baseScenarioName"])
		assert.Len(t, decoded["alternativeResults"], 2)
		assert.NotContains(t, result, "\"Result\"", "raw results are not serialised")
	}
}
