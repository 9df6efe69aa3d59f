package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/nlpay/internal/calculation"
	"github.com/rgehrsitz/nlpay/internal/domain"
)

// Field identifies one row of the input form
type Field int

const (
	FieldIncome Field = iota
	FieldPeriod
	FieldYear
	FieldRuling
	FieldHolidayAllowance
	FieldSocialSecurity
	FieldRetired
	FieldHours
	fieldCount
)

func (f Field) String() string {
	switch f {
	case FieldIncome:
		return "Income"
	case FieldPeriod:
		return "Per"
	case FieldYear:
		return "Tax year"
	case FieldRuling:
		return "30% ruling"
	case FieldHolidayAllowance:
		return "Holiday allowance"
	case FieldSocialSecurity:
		return "Social security"
	case FieldRetired:
		return "Retirement age"
	case FieldHours:
		return "Hours per week"
	default:
		return "Unknown"
	}
}

// rulingChoices lists the ruling options in cycle order; index 0 is no ruling
var rulingChoices = []string{"none", "normal", "young", "research"}

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Right, k.Toggle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Left, k.Right, k.Toggle},
		{k.Help, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "previous field")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous option")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next option")),
		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

// Model is the state of the interactive paycheck form
type Model struct {
	engine *calculation.CalculationEngine

	incomeInput textinput.Model
	hoursInput  textinput.Model

	period           domain.Period
	years            []int
	yearIdx          int
	rulingIdx        int
	holidayAllowance bool
	socialSecurity   bool
	retired          bool

	focus Field

	result     *domain.PaycheckResult
	err        error
	calcSeq    uint64 // last calculation issued
	appliedSeq uint64 // last calculation shown

	keys keyMap
	help help.Model

	width  int
	height int
}

// NewModel creates a form prefilled with a yearly income in the engine's current year
func NewModel(engine *calculation.CalculationEngine, income decimal.Decimal) Model {
	incomeInput := textinput.New()
	incomeInput.Placeholder = "e.g. 60000"
	incomeInput.CharLimit = 12
	incomeInput.Width = 14
	incomeInput.SetValue(income.String())
	incomeInput.Focus()

	defaultHours := decimal.NewFromInt(int64(engine.DefaultWorkingHours())).String()
	hoursInput := textinput.New()
	hoursInput.Placeholder = defaultHours
	hoursInput.CharLimit = 5
	hoursInput.Width = 6
	hoursInput.SetValue(defaultHours)

	years := engine.SupportedYears()
	yearIdx := 0
	for i, y := range years {
		if y == engine.CurrentYear() {
			yearIdx = i
		}
	}

	return Model{
		engine:         engine,
		incomeInput:    incomeInput,
		hoursInput:     hoursInput,
		period:         domain.PeriodYear,
		years:          years,
		yearIdx:        yearIdx,
		socialSecurity: true,
		focus:          FieldIncome,
		keys:           defaultKeyMap(),
		help:           help.New(),
		width:          80,
		height:         24,
	}
}

// Init runs the first calculation
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.calculateCmd(m.calcSeq))
}

// Focus returns the focused field
func (m Model) Focus() Field { return m.focus }

// Result returns the latest successful calculation, if any
func (m Model) Result() *domain.PaycheckResult { return m.result }

// Err returns the error of the latest calculation, if any
func (m Model) Err() error { return m.err }

func (m Model) year() int {
	if len(m.years) == 0 {
		return m.engine.CurrentYear()
	}
	return m.years[m.yearIdx]
}

func (m Model) ruling() domain.RulingOptions {
	if m.rulingIdx == 0 {
		return domain.RulingDisabled()
	}
	t, _ := domain.ParseRulingType(rulingChoices[m.rulingIdx])
	return domain.RulingEnabled(t)
}

// recalculate issues a calculation stamped with the next sequence number
func (m *Model) recalculate() tea.Cmd {
	m.calcSeq++
	return m.calculateCmd(m.calcSeq)
}

// calculateCmd snapshots the form and calculates off the update loop
func (m Model) calculateCmd(seq uint64) tea.Cmd {
	engine := m.engine
	incomeText := strings.TrimSpace(m.incomeInput.Value())
	hoursText := strings.TrimSpace(m.hoursInput.Value())
	period, year, ruling := m.period, m.year(), m.ruling()
	opts := []domain.InputOption{
		domain.WithHolidayAllowance(m.holidayAllowance),
		domain.WithSocialSecurity(m.socialSecurity),
		domain.WithRetirementAge(m.retired),
	}

	return func() tea.Msg {
		income, err := parseAmount("income", incomeText)
		if err != nil {
			return CalculationCompleteMsg{Seq: seq, Err: err}
		}
		if hoursText != "" {
			hours, err := parseAmount("working hours", hoursText)
			if err != nil {
				return CalculationCompleteMsg{Seq: seq, Err: err}
			}
			opts = append(opts, domain.WithHoursPerWeek(hours))
		}

		input, err := engine.NewSalaryInput(income, opts...)
		if err != nil {
			return CalculationCompleteMsg{Seq: seq, Err: err}
		}
		result, err := engine.Calculate(input, period, year, ruling)
		return CalculationCompleteMsg{Seq: seq, Result: result, Err: err}
	}
}

func parseAmount(field, text string) (decimal.Decimal, error) {
	if text == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(text, ",", ""))
	if err != nil {
		return decimal.Zero, &domain.InvalidInputError{Field: field, Value: text, Reason: "must be a number"}
	}
	return d, nil
}
