package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/dashboard"
	"github.com/julianstephens/dashlit/internal/health"
	"github.com/julianstephens/dashlit/internal/models"
	"github.com/julianstephens/dashlit/internal/notes"
	"github.com/julianstephens/dashlit/internal/tui/components/goallist"
	"github.com/julianstephens/dashlit/internal/tui/components/ledger"
	"github.com/julianstephens/dashlit/internal/tui/components/notepad"
	"github.com/julianstephens/dashlit/internal/tui/components/wellness"
)

type GoalFormModel struct {
	Text string
}

type TransactionFormModel struct {
	Label  string
	Amount string
}

type MoodNoteFormModel struct {
	Note string
}

// changeSet records which widgets notified since the last render. It is
// shared by pointer because bubbletea copies the Model on every Update.
type changeSet struct {
	goals, notes, ledger, health, theme bool
	unsubscribe                         []func()
}

type Model struct {
	dash          *dashboard.Dashboard
	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model
	styles        Styles
	goalList      goallist.Model
	ledgerList    ledger.Model
	notepad       notepad.Model
	wellness      wellness.Model
	form          *huh.Form
	goalForm      *GoalFormModel
	txForm        *TransactionFormModel
	moodForm      *MoodNoteFormModel
	changes       *changeSet
	notice        string
	noticeID      int
	quitting      bool
	width         int
	height        int
}

func NewModel(d *dashboard.Dashboard) Model {
	changes := &changeSet{}
	changes.unsubscribe = []func(){
		d.Goals.Subscribe(func([]models.Goal) { changes.goals = true }),
		d.Notes.Subscribe(func(notes.View) { changes.notes = true }),
		d.Ledger.Subscribe(func([]models.Transaction) { changes.ledger = true }),
		d.Health.Subscribe(func(health.Snapshot) { changes.health = true }),
		d.Theme.Subscribe(func(models.Theme) { changes.theme = true }),
	}

	m := Model{
		dash:       d,
		state:      constants.StateGoals,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		goalList:   goallist.New(d.Goals.Snapshot(), 0, 0),
		ledgerList: ledger.New(d.Ledger.Snapshot(), 0, 0),
		notepad:    notepad.New(d.Notes.Draft(), 0, 0),
		wellness:   wellness.New(d.Health.Snapshot()),
		changes:    changes,
	}
	m.applyTheme()
	return m
}

// Close drops the widget subscriptions
func (m Model) Close() {
	for _, fn := range m.changes.unsubscribe {
		fn()
	}
	m.changes.unsubscribe = nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

// State returns the active view
func (m Model) State() constants.SessionState {
	return m.state
}

// Notice returns the warning currently shown in the footer
func (m Model) Notice() string {
	return m.notice
}

func (m *Model) applyTheme() {
	m.styles = NewStyles(m.dash.Theme.Current())
	m.wellness.SetHighlight(m.styles.Highlight)
}

// applyChanges pulls fresh snapshots for every widget that notified
func (m *Model) applyChanges() {
	c := m.changes
	if c.goals {
		m.goalList.SetGoals(m.dash.Goals.Snapshot())
	}
	if c.ledger {
		m.ledgerList.SetTransactions(m.dash.Ledger.Snapshot())
	}
	if c.health {
		m.wellness.SetSnapshot(m.dash.Health.Snapshot())
	}
	if c.theme {
		m.applyTheme()
	}
	c.goals, c.notes, c.ledger, c.health, c.theme = false, false, false, false, false
}

func (m Model) activeKeys() KeyMap {
	if m.state == constants.StateNotes {
		return m.keys.editorKeys()
	}
	return m.keys
}

func (m Model) componentKeys() []key.Binding {
	switch m.state {
	case constants.StateGoals:
		return m.goalList.Keys()
	case constants.StateNotes:
		return m.notepad.Keys()
	case constants.StateFinances:
		return m.ledgerList.Keys()
	case constants.StateHealth:
		return m.wellness.Keys()
	}
	return nil
}

func (m Model) ShortHelp() []key.Binding {
	k := m.activeKeys()
	if m.isForm() {
		return []key.Binding{k.Back}
	}
	keys := []key.Binding{k.Tab, k.Theme, k.Quit, k.Help}
	return append(keys, m.componentKeys()...)
}

func (m Model) FullHelp() [][]key.Binding {
	k := m.activeKeys()
	if m.isForm() {
		return [][]key.Binding{{k.Back}}
	}
	global := []key.Binding{k.Tab, k.ShiftTab, k.Theme, k.Quit, k.Help}
	navigation := []key.Binding{k.Up, k.Down}
	return [][]key.Binding{global, navigation, m.componentKeys()}
}

func (m Model) isForm() bool {
	switch m.state {
	case constants.StateAddGoal, constants.StateAddTransaction, constants.StateEditMoodNote:
		return true
	}
	return false
}
