package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/julianstephens/dashlit/internal/constants"
	ledgerstore "github.com/julianstephens/dashlit/internal/ledger"
)

var tabTitles = map[constants.SessionState]string{
	constants.StateGoals:    "Goals",
	constants.StateNotes:    "Notes",
	constants.StateFinances: "Finances",
	constants.StateHealth:   "Health & Mood",
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateGoals:
		content = m.goalList.View()
	case constants.StateNotes:
		content = m.styles.Doc.Render(m.notepad.View())
	case constants.StateFinances:
		content = m.ledgerList.View()
	case constants.StateHealth:
		content = m.styles.Doc.Render(m.wellness.View())
	default:
		content = m.styles.Doc.Render(m.form.View())
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		m.viewHeader(),
		content,
		m.styles.Notice.Render(m.notice),
		m.help.View(m),
	)

	frame := m.styles.Frame
	if m.width > 0 && m.height > 0 {
		frame = frame.Width(m.width).Height(m.height)
	}
	return frame.Render(ui)
}

func (m Model) viewTabs() string {
	active := m.state
	if m.isForm() {
		active = m.previousState
	}

	var tabs []string
	for _, state := range constants.Tabs {
		if state == active {
			tabs = append(tabs, m.styles.ActiveTab.Render(tabTitles[state]))
		} else {
			tabs = append(tabs, m.styles.InactiveTab.Render(tabTitles[state]))
		}
	}
	tabs = append(tabs, m.styles.Muted.Render(" "+string(m.dash.Theme.Current())))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewHeader() string {
	switch m.state {
	case constants.StateGoals:
		done, total := m.dash.Goals.Counts()
		return m.styles.Header.Render(fmt.Sprintf("Daily goals  %d/%d done", done, total))

	case constants.StateNotes:
		status := "not saved this session"
		if at, ok := m.dash.Notes.SavedAt(); ok {
			status = "saved " + humanize.Time(at)
		}
		if m.dash.Notes.Dirty() {
			status = "unsaved changes"
		}
		return m.styles.Header.Render("Notes  ") + m.styles.Muted.Render(status)

	case constants.StateFinances:
		balance := m.dash.Ledger.Balance()
		style := m.styles.Income
		if balance.IsNegative() {
			style = m.styles.Expense
		}
		return m.styles.Header.Render("Balance ") + style.Render(ledgerstore.FormatSigned(balance)) +
			m.styles.Muted.Render(fmt.Sprintf("  in %s  out %s",
				m.dash.Ledger.Income().StringFixed(2),
				m.dash.Ledger.Expenses().Abs().StringFixed(2)))

	case constants.StateHealth:
		return m.styles.Header.Render("Health & Mood")
	}
	return ""
}
