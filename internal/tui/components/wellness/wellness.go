package wellness

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/health"
	"github.com/julianstephens/dashlit/internal/models"
)

// SleepStep is how far one key press moves the sleep slider
const SleepStep = 0.5

type WaterMsg struct {
	Up bool
}

type StepsMsg struct {
	Up bool
}

// SleepMsg carries an hours value already clamped to the slider range
type SleepMsg struct {
	Hours float64
}

type MoodMsg struct {
	Mood models.Mood
}

type EditMoodNoteMsg struct{}

type KeyMap struct {
	WaterUp   key.Binding
	WaterDown key.Binding
	StepsUp   key.Binding
	StepsDown key.Binding
	SleepUp   key.Binding
	SleepDown key.Binding
	Mood      key.Binding
	Note      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		WaterUp: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w/W", "water +/-"),
		),
		WaterDown: key.NewBinding(
			key.WithKeys("W"),
		),
		StepsUp: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s/S", "steps +/-"),
		),
		StepsDown: key.NewBinding(
			key.WithKeys("S"),
		),
		SleepUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("[/]", "sleep -/+"),
		),
		SleepDown: key.NewBinding(
			key.WithKeys("["),
		),
		Mood: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "mood"),
		),
		Note: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "mood note"),
		),
	}
}

type Model struct {
	snap     health.Snapshot
	keys     KeyMap
	selected lipgloss.Style
}

func New(snap health.Snapshot) Model {
	return Model{
		snap:     snap,
		keys:     DefaultKeyMap(),
		selected: lipgloss.NewStyle().Reverse(true),
	}
}

func (m *Model) SetSnapshot(snap health.Snapshot) {
	m.snap = snap
}

// SetHighlight sets the style used for the chosen mood
func (m *Model) SetHighlight(style lipgloss.Style) {
	m.selected = style
}

func (m Model) Keys() []key.Binding {
	return []key.Binding{m.keys.WaterUp, m.keys.StepsUp, m.keys.SleepUp, m.keys.Mood, m.keys.Note}
}

// ClampSleep keeps hours within the slider range
func ClampSleep(hours float64) float64 {
	return min(max(hours, constants.MinSleepHours), constants.MaxSleepHours)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	var out tea.Msg
	switch {
	case key.Matches(keyMsg, m.keys.WaterUp):
		out = WaterMsg{Up: true}
	case key.Matches(keyMsg, m.keys.WaterDown):
		out = WaterMsg{Up: false}
	case key.Matches(keyMsg, m.keys.StepsUp):
		out = StepsMsg{Up: true}
	case key.Matches(keyMsg, m.keys.StepsDown):
		out = StepsMsg{Up: false}
	case key.Matches(keyMsg, m.keys.SleepUp):
		out = SleepMsg{Hours: ClampSleep(m.snap.Metrics.Sleep + SleepStep)}
	case key.Matches(keyMsg, m.keys.SleepDown):
		out = SleepMsg{Hours: ClampSleep(m.snap.Metrics.Sleep - SleepStep)}
	case key.Matches(keyMsg, m.keys.Mood):
		if mood, ok := models.ParseMood(keyMsg.String()); ok {
			out = MoodMsg{Mood: mood}
		}
	case key.Matches(keyMsg, m.keys.Note):
		out = EditMoodNoteMsg{}
	}
	if out == nil {
		return m, nil
	}
	return m, func() tea.Msg { return out }
}

func (m Model) View() string {
	metrics := m.snap.Metrics
	var b strings.Builder

	fmt.Fprintf(&b, "  Water   %s  %d cups\n", strings.Repeat("💧", min(metrics.Water, 12)), metrics.Water)
	fmt.Fprintf(&b, "  Steps   %s\n", humanize.Comma(int64(metrics.Steps)))
	fmt.Fprintf(&b, "  Sleep   %s %.1f h\n\n", sleepBar(metrics.Sleep, 24), metrics.Sleep)

	var moods []string
	for _, mood := range models.Moods {
		cell := " " + string(mood) + " "
		if mood == m.snap.Mood.Value {
			cell = m.selected.Render(cell)
		}
		moods = append(moods, cell)
	}
	fmt.Fprintf(&b, "  Mood    %s\n", strings.Join(moods, " "))

	note := m.snap.Mood.Note
	if note == "" {
		note = "(no note, press 'n' to add one)"
	}
	fmt.Fprintf(&b, "  Note    %s\n", note)
	return b.String()
}

func sleepBar(hours float64, width int) string {
	filled := int(hours / constants.MaxSleepHours * float64(width))
	filled = min(max(filled, 0), width)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}
