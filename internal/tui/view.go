package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/nlpay/internal/output"
)

// View renders the form, the latest result and the key help
func (m Model) View() string {
	title := TitleStyle.Render("NLPAY - Dutch Net Paycheck")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		FormStyle.Render(m.renderForm()),
		"  ",
		m.renderResult(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body,
		"",
		m.help.View(m.keys),
	)
}

func (m Model) renderForm() string {
	var sb strings.Builder
	for f := Field(0); f < fieldCount; f++ {
		labelStyle, valueStyle := ParameterLabelStyle, ParameterValueStyle
		marker := "  "
		if f == m.focus {
			labelStyle, valueStyle = FocusedLabelStyle, FocusedValueStyle
			marker = "> "
		}
		sb.WriteString(marker)
		sb.WriteString(labelStyle.Render(f.String()))
		sb.WriteString(valueStyle.Render(m.fieldValue(f)))
		if f < fieldCount-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func (m Model) fieldValue(f Field) string {
	switch f {
	case FieldIncome:
		return m.incomeInput.View()
	case FieldPeriod:
		return "‹ " + m.period.String() + " ›"
	case FieldYear:
		return "‹ " + strconv.Itoa(m.year()) + " ›"
	case FieldRuling:
		return "‹ " + rulingChoices[m.rulingIdx] + " ›"
	case FieldHolidayAllowance:
		return checkbox(m.holidayAllowance, "included in income")
	case FieldSocialSecurity:
		return checkbox(m.socialSecurity, "contributions apply")
	case FieldRetired:
		return checkbox(m.retired, "reached")
	case FieldHours:
		return m.hoursInput.View()
	}
	return ""
}

func checkbox(on bool, label string) string {
	if on {
		return "[x] " + label
	}
	return "[ ] " + label
}

func (m Model) renderResult() string {
	if m.err != nil {
		return ErrorStyle.Render("Error: " + m.err.Error())
	}
	if m.result == nil {
		return SubtitleStyle.Render("Calculating...")
	}

	r := m.result
	cards := []*MetricCard{
		NewMetricCard("Net per month", output.FormatCurrency(r.NetMonth())),
		NewMetricCard("Net per year", output.FormatCurrency(r.NetYear)),
		NewMetricCard("Gross per year", output.FormatCurrency(r.GrossYear)),
		NewMetricCard("Income tax", output.FormatCurrency(r.IncomeTax())).
			AsDeduction().
			WithDescription(fmt.Sprintf("%s effective", output.FormatPercentage(r.EffectiveTaxRate()))),
		NewMetricCard("Tax credits", output.FormatCurrency(r.TaxCredit())),
	}
	if r.TaxFreeYear.IsPositive() {
		cards = append(cards, NewMetricCard("Tax free", output.FormatCurrency(r.TaxFreeYear)).
			WithDescription(fmt.Sprintf("%s of gross", output.FormatPercentage(r.TaxFreePercent()))))
	}
	if r.NetAllowance.IsPositive() {
		cards = append(cards, NewMetricCard("Net holiday allowance", output.FormatCurrency(r.NetAllowance)))
	}

	return MetricGrid(cards, 2)
}
