package breakeven

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/nlpay/internal/output"
)

// TableFormatter formats solver results as a console table
type TableFormatter struct{}

// Format generates a formatted table for one solve
func (tf *TableFormatter) Format(result *SolveResult) string {
	var sb strings.Builder

	sb.WriteString("GROSS INCOME FOR TARGET NET\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	sb.WriteString(fmt.Sprintf("Scenario:            %s\n", result.Scenario))
	sb.WriteString(fmt.Sprintf("Tax Year:            %d\n", result.Year))
	sb.WriteString(fmt.Sprintf("Period:              %s\n", result.Period))
	sb.WriteString(fmt.Sprintf("Status:              %s\n", tf.formatStatus(result.Success)))
	sb.WriteString(fmt.Sprintf("Iterations:          %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence:         %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString("REQUIRED GROSS\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Gross per %-10s %s\n", result.Period+":", output.FormatCurrency(result.RequiredGross)))
	sb.WriteString(fmt.Sprintf("Gross per year:      %s\n", output.FormatCurrency(result.RequiredGrossYear)))
	sb.WriteString(fmt.Sprintf("Effective tax rate:  %s\n", output.FormatPercentage(result.EffectiveTaxRate)))
	sb.WriteString("\n")

	sb.WriteString("TARGET NET MATCH\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Target Net:          %s\n", output.FormatCurrency(result.Request.TargetNet)))
	sb.WriteString(fmt.Sprintf("Achieved Net:        %s\n", output.FormatCurrency(result.AchievedNet)))
	sb.WriteString(fmt.Sprintf("Difference:          %s%s\n", tf.deltaSymbol(result.Difference), output.FormatCurrency(result.Difference.Abs())))
	sb.WriteString("\n")

	return sb.String()
}

// FormatMulti formats the solves of several scenarios side by side
func (tf *TableFormatter) FormatMulti(result *MultiResult) string {
	var sb strings.Builder

	sb.WriteString("GROSS INCOME FOR TARGET NET BY SCENARIO\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Target net per %s: %s\n\n", result.Period, output.FormatCurrency(result.TargetNet)))

	sb.WriteString(fmt.Sprintf("%-24s %6s %16s %16s %12s\n",
		"Scenario", "Year", "Gross/"+result.Period, "Gross/year", "Eff. Rate"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	for _, res := range result.Results {
		sb.WriteString(fmt.Sprintf("%-24s %6d %16s %16s %12s\n",
			tf.truncate(res.Scenario, 24),
			res.Year,
			res.RequiredGross.StringFixed(2),
			tf.formatShort(res.RequiredGrossYear),
			output.FormatPercentage(res.EffectiveTaxRate)))
	}
	sb.WriteString("\n")

	if len(result.Recommendations) > 0 {
		sb.WriteString("RECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range result.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output for one solve
func (jf *JSONFormatter) Format(result *SolveResult) (string, error) {
	return jf.marshal(result)
}

// FormatMulti generates JSON output for several solves
func (jf *JSONFormatter) FormatMulti(result *MultiResult) (string, error) {
	return jf.marshal(result)
}

func (jf *JSONFormatter) marshal(v any) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

func (tf *TableFormatter) formatStatus(success bool) string {
	if success {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

func (tf *TableFormatter) formatShort(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		return d.Div(decimal.NewFromInt(1000000)).StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		return d.Div(decimal.NewFromInt(1000)).StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return ""
}

func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
