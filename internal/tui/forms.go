package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/ledger"
	"github.com/julianstephens/dashlit/internal/models"
)

func requireText(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " cannot be empty")
		}
		return nil
	}
}

// NewGoalForm creates the form for adding a goal
func NewGoalForm(fm *GoalFormModel, theme models.Theme) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New goal").
				Placeholder("Read 20 pages").
				Value(&fm.Text).
				Validate(requireText("goal")),
		),
	).WithTheme(formTheme(theme)).WithShowHelp(false)
}

// NewTransactionForm creates the form for adding a transaction
func NewTransactionForm(fm *TransactionFormModel, theme models.Theme) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Label").
				Placeholder("Coffee").
				Value(&fm.Label).
				Validate(requireText("label")),
			huh.NewInput().
				Title("Amount").
				Description("Positive for income, negative for expenses").
				Placeholder("-3.50").
				Value(&fm.Amount).
				Validate(func(s string) error {
					if _, ok := ledger.ParseAmount(s); !ok {
						return errors.New("amount must be a number such as 12.50 or -3")
					}
					return nil
				}),
		),
	).WithTheme(formTheme(theme)).WithShowHelp(false)
}

// NewMoodNoteForm creates the form for editing the mood note
func NewMoodNoteForm(fm *MoodNoteFormModel, theme models.Theme) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Mood note").
				Value(&fm.Note),
		),
	).WithTheme(formTheme(theme)).WithShowHelp(false)
}

func (m *Model) openForm(state constants.SessionState, form *huh.Form) tea.Cmd {
	m.previousState = m.state
	m.state = state
	m.form = form
	return m.form.Init()
}

func (m *Model) closeForm() {
	m.state = m.previousState
	m.form = nil
}

// handleFormState routes a message to the open form and applies the result
// once the form completes
func (m *Model) handleFormState(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.closeForm()
		return nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		var err error
		switch m.state {
		case constants.StateAddGoal:
			_, err = m.dash.Goals.Add(m.goalForm.Text)
		case constants.StateAddTransaction:
			_, err = m.dash.Ledger.Add(m.txForm.Label, m.txForm.Amount)
		case constants.StateEditMoodNote:
			err = m.dash.Health.SetMoodNote(m.moodForm.Note)
		}
		m.closeForm()
		return tea.Batch(cmd, m.report(err))
	case huh.StateAborted:
		m.closeForm()
	}
	return cmd
}
