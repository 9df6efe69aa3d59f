package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/nlpay/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("PAYCHECK SCENARIO COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Scenario: %s\n", compSet.BaseScenarioName))
	sb.WriteString("\n")

	nameWidth := 28
	numWidth := 12

	sb.WriteString(fmt.Sprintf("%-*s %6s %*s %*s %*s %*s\n",
		nameWidth, "Scenario",
		"Year",
		numWidth, "Gross/yr",
		numWidth, "Tax/yr",
		numWidth, "Net/yr",
		numWidth, "Net/month"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.ScenarioName))
			if alt.Description != "" {
				sb.WriteString(fmt.Sprintf("  %s\n", alt.Description))
			}

			sb.WriteString(fmt.Sprintf("  Net Income:   %s%s per year, %s%s per month (%s%%)\n",
				tf.deltaSymbol(alt.NetDiffFromBase),
				output.FormatCurrency(alt.NetDiffFromBase),
				tf.deltaSymbol(alt.NetMonthDiffFromBase),
				output.FormatCurrency(alt.NetMonthDiffFromBase),
				alt.NetPctFromBase.StringFixed(1)))

			if !alt.TaxFreeYear.IsZero() {
				sb.WriteString(fmt.Sprintf("  Tax Free:     %s\n", output.FormatCurrency(alt.TaxFreeYear)))
			}

			if !alt.TaxDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Tax Impact:   %s%s\n",
					tf.deltaSymbol(alt.TaxDiffFromBase),
					output.FormatCurrency(alt.TaxDiffFromBase)))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.ScenarioName
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %6d %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		result.Year,
		numWidth, tf.formatDecimal(result.GrossYear),
		numWidth, tf.formatDecimal(result.IncomeTax),
		numWidth, tf.formatDecimal(result.NetYear),
		numWidth, tf.formatDecimal(result.NetMonth))
}

// formatDecimal formats a decimal compactly in thousands or millions
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		return "€" + d.Div(decimal.NewFromInt(1000000)).StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		return "€" + d.Div(decimal.NewFromInt(1000)).StringFixed(1) + "K"
	}
	return "€" + d.StringFixed(0)
}

// deltaSymbol returns "+" for gains; losses carry their own minus sign
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// FormatCompact creates a compact single-line summary for each scenario
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseScenarioName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if !alt.NetMonthDiffFromBase.IsZero() {
			change = tf.deltaSymbol(alt.NetMonthDiffFromBase) + output.FormatCurrency(alt.NetMonthDiffFromBase) + "/month"
		}
		sb.WriteString(fmt.Sprintf("%s: %s", alt.ScenarioName, change))
	}

	return sb.String()
}
