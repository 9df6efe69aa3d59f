package output

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("#7D56F4")
	ColorMuted   = lipgloss.Color("#626262")
	ColorSuccess = lipgloss.Color("#04B575")
	ColorDanger  = lipgloss.Color("#FF5F87")
	ColorBorder  = lipgloss.Color("#383838")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Width(labelWidth)

	AmountStyle = lipgloss.NewStyle().
			Width(amountWidth).
			Align(lipgloss.Right)

	HeaderStyle = AmountStyle.
			Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)

const (
	labelWidth  = 26
	amountWidth = 16
)

// AmountStyleFor colours credits green and deductions red
func AmountStyleFor(positive, negative bool) lipgloss.Style {
	switch {
	case negative:
		return AmountStyle.Foreground(ColorDanger)
	case positive:
		return AmountStyle.Foreground(ColorSuccess)
	default:
		return AmountStyle
	}
}
