package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/nlpay/internal/domain"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case CalculationCompleteMsg:
		if msg.Seq < m.appliedSeq {
			return m, nil
		}
		m.appliedSeq = msg.Seq
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.result = msg.Result
		return m, nil
	}

	return m.updateInputs(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Next):
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	}

	if m.isTextField() {
		return m.updateInputs(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Toggle):
		m.cycle(1)
		calc := m.recalculate()
		return m, calc

	case key.Matches(msg, m.keys.Left):
		m.cycle(-1)
		calc := m.recalculate()
		return m, calc
	}

	return m, nil
}

// updateInputs forwards a message to the focused text input and recalculates on edits
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FieldIncome:
		before := m.incomeInput.Value()
		m.incomeInput, cmd = m.incomeInput.Update(msg)
		if m.incomeInput.Value() != before {
			calc := m.recalculate()
			return m, tea.Batch(cmd, calc)
		}
	case FieldHours:
		before := m.hoursInput.Value()
		m.hoursInput, cmd = m.hoursInput.Update(msg)
		if m.hoursInput.Value() != before {
			calc := m.recalculate()
			return m, tea.Batch(cmd, calc)
		}
	}
	return m, cmd
}

func (m Model) isTextField() bool {
	return m.focus == FieldIncome || m.focus == FieldHours
}

func (m *Model) setFocus(f Field) {
	m.focus = f
	m.incomeInput.Blur()
	m.hoursInput.Blur()
	switch f {
	case FieldIncome:
		m.incomeInput.Focus()
	case FieldHours:
		m.hoursInput.Focus()
	}
}

// cycle moves the focused option field by step, wrapping around; toggles flip
func (m *Model) cycle(step int) {
	switch m.focus {
	case FieldPeriod:
		n := len(domain.Periods)
		m.period = domain.Periods[(indexOfPeriod(m.period)+step+n)%n]
	case FieldYear:
		if n := len(m.years); n > 0 {
			m.yearIdx = (m.yearIdx + step + n) % n
		}
	case FieldRuling:
		n := len(rulingChoices)
		m.rulingIdx = (m.rulingIdx + step + n) % n
	case FieldHolidayAllowance:
		m.holidayAllowance = !m.holidayAllowance
	case FieldSocialSecurity:
		m.socialSecurity = !m.socialSecurity
	case FieldRetired:
		m.retired = !m.retired
	}
}

func indexOfPeriod(p domain.Period) int {
	for i, candidate := range domain.Periods {
		if candidate == p {
			return i
		}
	}
	return 0
}
