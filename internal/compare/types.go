package compare

import (
	"fmt"

	"github.com/rgehrsitz/nlpay/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult holds the key figures of one scenario and its deltas to the base
type ComparisonResult struct {
	ScenarioName string                 `json:"scenarioName"`
	Description  string                 `json:"description"`
	Scenario     *domain.Scenario       `json:"-"`
	Result       *domain.PaycheckResult `json:"-"`

	// Key Metrics
	Year             int             `json:"year"`
	Ruling           string          `json:"ruling"`
	GrossYear        decimal.Decimal `json:"grossYear"`
	TaxFreeYear      decimal.Decimal `json:"taxFreeYear"`
	IncomeTax        decimal.Decimal `json:"incomeTax"`
	NetYear          decimal.Decimal `json:"netYear"`
	NetMonth         decimal.Decimal `json:"netMonth"`
	EffectiveTaxRate decimal.Decimal `json:"effectiveTaxRate"`

	// Comparison to Base
	NetDiffFromBase      decimal.Decimal `json:"netDiffFromBase"`
	NetPctFromBase       decimal.Decimal `json:"netPctFromBase"`
	NetMonthDiffFromBase decimal.Decimal `json:"netMonthDiffFromBase"`
	TaxDiffFromBase      decimal.Decimal `json:"taxDiffFromBase"`
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
}

// MetricsCalculator extracts key metrics from paycheck results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the comparison metrics of one calculated scenario
func (mc *MetricsCalculator) CalculateMetrics(scenario *domain.Scenario, result *domain.PaycheckResult) ComparisonResult {
	ruling := "none"
	if scenario.Ruling.Enabled {
		ruling = scenario.Ruling.Type.String()
	}
	return ComparisonResult{
		ScenarioName:     scenario.Name,
		Scenario:         scenario,
		Result:           result,
		Year:             result.Year,
		Ruling:           ruling,
		GrossYear:        result.GrossYear,
		TaxFreeYear:      result.TaxFreeYear,
		IncomeTax:        result.IncomeTax(),
		NetYear:          result.NetYear,
		NetMonth:         result.NetMonth(),
		EffectiveTaxRate: result.EffectiveTaxRate(),
	}
}

// CalculateComparison computes the deltas between a scenario and the base.
// Income tax is negative, so a positive tax delta means less tax paid.
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.NetDiffFromBase = scenario.NetYear.Sub(base.NetYear)
	scenario.NetMonthDiffFromBase = scenario.NetMonth.Sub(base.NetMonth)

	if !base.NetYear.IsZero() {
		scenario.NetPctFromBase = scenario.NetDiffFromBase.
			Div(base.NetYear).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	scenario.TaxDiffFromBase = scenario.IncomeTax.Sub(base.IncomeTax)

	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	// Find best scenario by net income
	bestNet := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.NetYear.GreaterThan(bestNet.NetYear) {
			bestNet = alt
		}
	}

	if bestNet != compSet.BaseResult {
		recommendations = append(recommendations,
			fmt.Sprintf("Highest Net Income: %s pays €%s more per month than the base scenario",
				bestNet.ScenarioName, bestNet.NetMonthDiffFromBase.StringFixed(2)))
	}

	// Find lowest tax burden; income tax is negative so the largest value wins
	lowestTax := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.IncomeTax.GreaterThan(lowestTax.IncomeTax) {
			lowestTax = alt
		}
	}

	if lowestTax != compSet.BaseResult {
		recommendations = append(recommendations,
			fmt.Sprintf("Lowest Taxes: %s saves €%s in income tax per year",
				lowestTax.ScenarioName, lowestTax.TaxDiffFromBase.StringFixed(2)))
	}

	return recommendations
}
