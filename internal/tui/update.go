package tui

import (
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/errors"
	"github.com/julianstephens/dashlit/internal/tui/components/goallist"
	"github.com/julianstephens/dashlit/internal/tui/components/ledger"
	"github.com/julianstephens/dashlit/internal/tui/components/notepad"
	"github.com/julianstephens/dashlit/internal/tui/components/wellness"
)

type clearNoticeMsg struct {
	id int
}

// reportDelay is how long a persistence warning stays visible
var reportDelay = constants.NoticeDuration

// report shows a persistence failure in the footer without interrupting the
// session. A nil error is ignored.
func (m *Model) report(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	m.noticeID++
	id := m.noticeID
	m.notice = errors.Notice(err)
	return tea.Tick(reportDelay, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	m.applyChanges()
	return m, cmd
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil
	case clearNoticeMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
		return nil
	}

	if m.isForm() {
		return m.handleFormState(msg)
	}

	if handled, cmd := m.handleIntent(msg); handled {
		return cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		k := m.activeKeys()
		switch {
		case key.Matches(msg, k.Quit):
			m.quitting = true
			return tea.Quit
		case key.Matches(msg, k.Tab):
			return m.switchTab(1)
		case key.Matches(msg, k.ShiftTab):
			return m.switchTab(-1)
		case key.Matches(msg, k.Theme):
			return m.report(m.dash.Theme.Toggle())
		case key.Matches(msg, k.Help) && m.state != constants.StateNotes:
			m.help.ShowAll = !m.help.ShowAll
			return nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case constants.StateGoals:
		m.goalList, cmd = m.goalList.Update(msg)
	case constants.StateNotes:
		m.notepad, cmd = m.notepad.Update(msg)
	case constants.StateFinances:
		m.ledgerList, cmd = m.ledgerList.Update(msg)
	case constants.StateHealth:
		m.wellness, cmd = m.wellness.Update(msg)
	}
	return cmd
}

// handleIntent applies the messages emitted by the components
func (m *Model) handleIntent(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case goallist.AddGoalMsg:
		m.goalForm = &GoalFormModel{}
		return true, m.openForm(constants.StateAddGoal, NewGoalForm(m.goalForm, m.dash.Theme.Current()))
	case goallist.ToggleGoalMsg:
		return true, m.report(m.dash.Goals.Toggle(msg.ID))
	case goallist.RemoveGoalMsg:
		return true, m.report(m.dash.Goals.Remove(msg.ID))

	case notepad.EditNoteMsg:
		m.dash.Notes.Edit(msg.Text)
		return true, nil
	case notepad.SaveNoteMsg:
		return true, m.report(m.dash.Notes.Save())

	case ledger.AddTransactionMsg:
		m.txForm = &TransactionFormModel{}
		return true, m.openForm(constants.StateAddTransaction, NewTransactionForm(m.txForm, m.dash.Theme.Current()))
	case ledger.RemoveTransactionMsg:
		return true, m.report(m.dash.Ledger.Remove(msg.ID))

	case wellness.WaterMsg:
		if msg.Up {
			return true, m.report(m.dash.Health.IncrementWater())
		}
		return true, m.report(m.dash.Health.DecrementWater())
	case wellness.StepsMsg:
		if msg.Up {
			return true, m.report(m.dash.Health.IncrementSteps(constants.DefaultStepDelta))
		}
		return true, m.report(m.dash.Health.DecrementSteps(constants.DefaultStepDelta))
	case wellness.SleepMsg:
		return true, m.report(m.dash.Health.SetSleep(msg.Hours))
	case wellness.MoodMsg:
		return true, m.report(m.dash.Health.SetMood(msg.Mood))
	case wellness.EditMoodNoteMsg:
		m.moodForm = &MoodNoteFormModel{Note: m.dash.Health.Mood().Note}
		return true, m.openForm(constants.StateEditMoodNote, NewMoodNoteForm(m.moodForm, m.dash.Theme.Current()))
	}
	return false, nil
}

func (m *Model) switchTab(step int) tea.Cmd {
	i := slices.Index(constants.Tabs, m.state)
	if i < 0 {
		i = 0
	}
	n := len(constants.Tabs)
	m.state = constants.Tabs[(i+step+n)%n]

	if m.state == constants.StateNotes {
		return m.notepad.Focus()
	}
	m.notepad.Blur()
	return nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	// tabs, header, notice and help take roughly six rows
	bodyHeight := max(height-8, 3)
	bodyWidth := max(width-4, 10)
	m.goalList.SetSize(bodyWidth, bodyHeight)
	m.ledgerList.SetSize(bodyWidth, bodyHeight)
	m.notepad.SetSize(bodyWidth, bodyHeight)
}
