package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/nlpay/internal/domain"
	"github.com/shopspring/decimal"
)

// ConsoleFormatter prints a short plain-text summary
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(result *domain.PaycheckResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "NET PAYCHECK SUMMARY (%d)\n", result.Year)
	fmt.Fprintln(&buf, strings.Repeat("=", 26))
	fmt.Fprintf(&buf, "Gross per year:     %s\n", FormatCurrency(result.GrossYear))
	fmt.Fprintf(&buf, "Gross per month:    %s\n", FormatCurrency(result.GrossMonth()))
	fmt.Fprintf(&buf, "Income tax:         %s\n", FormatCurrency(result.IncomeTax()))
	if result.TaxFreeYear.IsPositive() {
		fmt.Fprintf(&buf, "30%% ruling:         %s (%s)\n", FormatCurrency(result.TaxFreeYear), FormatPercentage(result.TaxFreePercent()))
	}
	fmt.Fprintf(&buf, "Net per year:       %s\n", FormatCurrency(result.NetYear))
	fmt.Fprintf(&buf, "Net per month:      %s\n", FormatCurrency(result.NetMonth()))
	fmt.Fprintf(&buf, "Effective tax rate: %s\n", FormatPercentage(result.EffectiveTaxRate()))
	return buf.Bytes(), nil
}

// ConsoleVerboseFormatter renders the full breakdown as styled year and month columns
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

type breakdownRow struct {
	label string
	year  decimal.Decimal
	month decimal.Decimal
}

func (c ConsoleVerboseFormatter) Format(result *domain.PaycheckResult) ([]byte, error) {
	income := []breakdownRow{
		{"Gross income", result.GrossYear, result.GrossMonth()},
		{"Holiday allowance", result.GrossAllowance, result.GrossAllowance.Div(decimal.NewFromInt(12)).Round(2)},
		{"Tax free (30% ruling)", result.TaxFreeYear, result.TaxFreeYear.Div(decimal.NewFromInt(12)).Round(2)},
		{"Taxable income", result.TaxableYear, result.TaxableYear.Div(decimal.NewFromInt(12)).Round(2)},
	}
	taxes := []breakdownRow{
		{"Payroll tax", result.PayrollTax, result.PayrollTaxMonth()},
		{"Social security", result.SocialTax, result.SocialTaxMonth()},
		{"Tax before credits", result.TaxWithoutCredit(), result.TaxWithoutCreditMonth()},
		{"Labour credit", result.LabourCredit, result.LabourCreditMonth()},
		{"General credit", result.GeneralCredit, result.GeneralCreditMonth()},
		{"Total credits", result.TaxCredit(), result.TaxCreditMonth()},
		{"Income tax", result.IncomeTax(), result.IncomeTaxMonth()},
	}
	net := []breakdownRow{
		{"Net income", result.NetYear, result.NetMonth()},
		{"Net holiday allowance", result.NetAllowance, result.NetAllowance.Div(decimal.NewFromInt(12)).Round(2)},
	}

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		LabelStyle.Render(""),
		HeaderStyle.Render("Year"),
		HeaderStyle.Render("Month"),
	)

	sections := []string{
		TitleStyle.Render(fmt.Sprintf("DUTCH NET PAYCHECK (%d)", result.Year)),
		header,
		SectionStyle.Render("INCOME"),
		renderRows(income, false),
		SectionStyle.Render("TAXES & CREDITS"),
		renderRows(taxes, true),
		SectionStyle.Render("NET"),
		renderRows(net, false),
		"",
		renderPerPeriod(result),
	}

	var buf bytes.Buffer
	buf.WriteString(BoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...)))
	buf.WriteString("\n")
	return buf.Bytes(), nil
}

func renderRows(rows []breakdownRow, signed bool) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		style := AmountStyle
		if signed {
			style = AmountStyleFor(row.year.IsPositive(), row.year.IsNegative())
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			LabelStyle.Render(row.label),
			style.Render(FormatCurrency(row.year)),
			style.Render(FormatCurrency(row.month)),
		))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPerPeriod(result *domain.PaycheckResult) string {
	lines := []string{
		fmt.Sprintf("Net per week %s, per day %s, per hour %s",
			FormatCurrency(result.NetWeek()), FormatCurrency(result.NetDay()), FormatCurrency(result.NetHour())),
		fmt.Sprintf("Effective tax rate %s over %d weeks, %d days, %s hours/week",
			FormatPercentage(result.EffectiveTaxRate()), result.WorkingWeeks, result.WorkingDays, result.HoursPerWeek.String()),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
