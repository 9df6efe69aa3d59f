package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// MetricCard displays a single amount with a label
type MetricCard struct {
	Label       string
	Value       string
	Description string
	Negative    bool
	Width       int
}

// NewMetricCard creates a new metric card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 24,
	}
}

// WithDescription adds a subtitle
func (m *MetricCard) WithDescription(desc string) *MetricCard {
	m.Description = desc
	return m
}

// AsDeduction renders the value in the loss colour
func (m *MetricCard) AsDeduction() *MetricCard {
	m.Negative = true
	return m
}

// Render returns the styled metric card
func (m *MetricCard) Render() string {
	label := MetricLabelStyle.Render(m.Label)

	valueStyle := MetricValueStyle
	if m.Negative {
		valueStyle = valueStyle.Foreground(ColorDanger)
	}
	value := valueStyle.Render(m.Value)

	var desc string
	if m.Description != "" {
		desc = "\n" + SubtitleStyle.Render(m.Description)
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1).
		Width(m.Width)

	return cardStyle.Render(label + "\n" + value + desc)
}

// MetricGrid renders cards in rows of the given number of columns
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}

	rows := []string{}
	currentRow := []string{}

	for i, card := range cards {
		currentRow = append(currentRow, card.Render())

		if (i+1)%columns == 0 || i == len(cards)-1 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, currentRow...))
			currentRow = []string{}
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
