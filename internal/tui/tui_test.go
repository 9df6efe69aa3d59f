package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/nlpay/internal/calculation"
	"github.com/rgehrsitz/nlpay/internal/config"
	"github.com/rgehrsitz/nlpay/internal/domain"
)

func newTestModel(t *testing.T, income int64) Model {
	t.Helper()
	provider, err := config.LoadDefault()
	require.NoError(t, err)
	return NewModel(calculation.NewCalculationEngine(provider), decimal.NewFromInt(income))
}

// recalc runs the model's calculation directly and feeds the result back
func recalc(t *testing.T, m Model) Model {
	t.Helper()
	calc := m.recalculate()
	updated, _ := m.Update(calc())
	return updated.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestNewModel_Defaults(t *testing.T) {
	m := newTestModel(t, 60000)

	assert.Equal(t, FieldIncome, m.Focus())
	assert.Equal(t, "60000", m.incomeInput.Value())
	assert.Equal(t, "40", m.hoursInput.Value())
	assert.Equal(t, 2026, m.year())
	assert.False(t, m.ruling().Enabled)
	assert.True(t, m.socialSecurity)
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Calculating...")
}

func TestCalculation_UpdatesResult(t *testing.T) {
	m := newTestModel(t, 60000)
	m.yearIdx = 0
	m = recalc(t, m)

	require.NoError(t, m.Err())
	require.NotNil(t, m.Result())
	assert.True(t, m.Result().NetYear.Equal(decimal.RequireFromString("43712.80")))

	view := m.View()
	assert.Contains(t, view, "€43,712.80")
	assert.Contains(t, view, "Net per month")
	assert.NotContains(t, view, "Tax free")
}

func TestCalculation_DropsStaleResults(t *testing.T) {
	m := newTestModel(t, 60000)
	m.yearIdx = 0

	older := m.recalculate()
	m.incomeInput.SetValue("80000")
	newer := m.recalculate()

	updated, _ := m.Update(newer())
	m = updated.(Model)
	require.NotNil(t, m.Result())
	assert.True(t, m.Result().GrossYear.Equal(decimal.NewFromInt(80000)))

	updated, _ = m.Update(older())
	m = updated.(Model)
	assert.True(t, m.Result().GrossYear.Equal(decimal.NewFromInt(80000)), "an older result arriving late is ignored")

	updated, _ = m.Update(CalculationCompleteMsg{Seq: 1, Err: errors.New("late failure")})
	m = updated.(Model)
	assert.NoError(t, m.Err())
}

func TestFocusNavigation(t *testing.T) {
	m := newTestModel(t, 60000)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, FieldPeriod, m.Focus())
	assert.False(t, m.incomeInput.Focused())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, FieldHours, m.Focus(), "focus wraps around")
	assert.True(t, m.hoursInput.Focused())
}

func TestOptionFields_CycleAndRecalculate(t *testing.T) {
	m := newTestModel(t, 5000)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.NotNil(t, cmd)
	assert.Equal(t, domain.PeriodMonth, m.period)

	m = recalc(t, m)
	require.NotNil(t, m.Result())
	assert.True(t, m.Result().GrossYear.Equal(decimal.NewFromInt(60000)))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, domain.PeriodHour, m.period, "left wraps to the last period")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2025, m.year(), "the year wraps around")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, domain.RulingEnabled(domain.RulingNormal), m.ruling())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	assert.True(t, m.holidayAllowance)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.socialSecurity)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, m.retired)
}

func TestRulingShowsTaxFree(t *testing.T) {
	m := newTestModel(t, 80000)
	m.rulingIdx = 1
	m = recalc(t, m)

	require.NotNil(t, m.Result())
	view := m.View()
	assert.Contains(t, view, "Tax free")
	assert.Contains(t, view, "€24,000.00")
}

func TestIncomeEditing(t *testing.T) {
	m := newTestModel(t, 60000)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	require.NotNil(t, cmd, "an edit schedules a recalculation")
	assert.Equal(t, "6000", m.incomeInput.Value())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m = recalc(t, m)
	require.Error(t, m.Err())
	assert.ErrorIs(t, m.Err(), domain.ErrInvalidInput)
	assert.Contains(t, m.View(), "Error: income must be a number")
}

func TestUnsupportedYearError(t *testing.T) {
	m := newTestModel(t, 60000)
	m.years = []int{1999}
	m.yearIdx = 0
	m = recalc(t, m)

	assert.ErrorIs(t, m.Err(), domain.ErrUnsupportedYear)
}

func TestHelpAndQuit(t *testing.T) {
	m := newTestModel(t, 60000)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.True(t, m.help.ShowAll)

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

type fixedHoursProvider struct {
	calculation.RateProvider
	hours int
}

func (p fixedHoursProvider) DefaultWorkingHours() int { return p.hours }

func TestHoursDefaultFromRates(t *testing.T) {
	provider, err := config.LoadDefault()
	require.NoError(t, err)
	m := NewModel(calculation.NewCalculationEngine(fixedHoursProvider{RateProvider: provider, hours: 36}), decimal.NewFromInt(25))
	assert.Equal(t, "36", m.hoursInput.Value())

	m.period = domain.PeriodHour
	m.yearIdx = 0
	m.hoursInput.SetValue("")
	m = recalc(t, m)
	require.NoError(t, m.Err())
	assert.True(t, m.Result().GrossYear.Equal(decimal.NewFromInt(46800)), "blank hours use the rates default")
}

func TestWindowSize(t *testing.T) {
	m := newTestModel(t, 60000)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(Model)

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestMetricGrid(t *testing.T) {
	assert.Empty(t, MetricGrid(nil, 2))

	grid := MetricGrid([]*MetricCard{
		NewMetricCard("A", "€1.00"),
		NewMetricCard("B", "€2.00").AsDeduction().WithDescription("note"),
		NewMetricCard("C", "€3.00"),
	}, 2)
	assert.Contains(t, grid, "€1.00")
	assert.Contains(t, grid, "note")
	assert.Contains(t, grid, "€3.00")
}
