package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/dashboard"
	"github.com/julianstephens/dashlit/internal/health"
	"github.com/julianstephens/dashlit/internal/ids"
	"github.com/julianstephens/dashlit/internal/models"
	"github.com/julianstephens/dashlit/internal/storage"
	"github.com/julianstephens/dashlit/internal/storage/memory"
	"github.com/julianstephens/dashlit/internal/theme"
	"github.com/julianstephens/dashlit/internal/tui/components/goallist"
	"github.com/julianstephens/dashlit/internal/tui/components/notepad"
	"github.com/julianstephens/dashlit/internal/tui/components/wellness"
)

func setupModel(t *testing.T) (Model, *dashboard.Dashboard, *memory.Store) {
	t.Helper()
	p := memory.New()
	d := dashboard.New(storage.NewStore(p), dashboard.Options{
		IDs:    ids.NewSequence("g"),
		TxIDs:  ids.NewSequence("tx"),
		Clock:  func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) },
		System: theme.Static(false),
	})
	m := NewModel(d)
	t.Cleanup(m.Close)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, d, p
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return model, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabCycling(t *testing.T) {
	m, _, _ := setupModel(t)

	want := []constants.SessionState{
		constants.StateNotes,
		constants.StateFinances,
		constants.StateHealth,
		constants.StateGoals,
	}
	for _, w := range want {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
		if m.State() != w {
			t.Fatalf("State() = %v, want %v", m.State(), w)
		}
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.State() != constants.StateHealth {
		t.Errorf("shift+tab from goals = %v, want health", m.State())
	}
}

func TestThemeToggleKey(t *testing.T) {
	m, d, p := setupModel(t)

	m, _ = send(t, m, runes("t"))
	if d.Theme.Current() != models.ThemeDark {
		t.Fatalf("Current() = %q after 't', want dark", d.Theme.Current())
	}
	if raw, _ := p.Get("theme"); string(raw) != `"dark"` {
		t.Errorf("stored theme = %s", raw)
	}
	if !strings.Contains(m.View(), "dark") {
		t.Error("View() should show the active theme")
	}

	// plain letters belong to the editor on the notes tab
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = send(t, m, runes("t"))
	if d.Theme.Current() != models.ThemeDark {
		t.Error("'t' on the notes tab should not toggle the theme")
	}
	_, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if d.Theme.Current() != models.ThemeLight {
		t.Error("ctrl+t should toggle the theme from the notes tab")
	}
}

func TestGoalIntents(t *testing.T) {
	m, d, _ := setupModel(t)
	g, _ := d.Goals.Add("Read")

	m, _ = send(t, m, goallist.ToggleGoalMsg{ID: g.ID})
	if got, _ := d.Goals.Find(g.ID); !got.Done {
		t.Error("ToggleGoalMsg should mark the goal done")
	}
	if !strings.Contains(m.View(), "1/1 done") {
		t.Error("header should show progress")
	}

	m, _ = send(t, m, goallist.RemoveGoalMsg{ID: g.ID})
	if len(d.Goals.Snapshot()) != 0 {
		t.Error("RemoveGoalMsg should delete the goal")
	}

	m, _ = send(t, m, goallist.AddGoalMsg{})
	if m.State() != constants.StateAddGoal {
		t.Errorf("State() = %v, want add-goal form", m.State())
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.State() != constants.StateGoals {
		t.Errorf("esc should close the form, State() = %v", m.State())
	}
}

func TestHealthIntents(t *testing.T) {
	m, d, _ := setupModel(t)

	m, _ = send(t, m, wellness.WaterMsg{Up: true})
	m, _ = send(t, m, wellness.StepsMsg{Up: true})
	m, _ = send(t, m, wellness.SleepMsg{Hours: 7.5})
	_, _ = send(t, m, wellness.MoodMsg{Mood: models.MoodGreat})

	snap := d.Health.Snapshot()
	want := models.HealthMetrics{Water: 1, Steps: 500, Sleep: 7.5}
	if snap.Metrics != want || snap.Mood.Value != models.MoodGreat {
		t.Errorf("Snapshot() = %+v", snap)
	}
}

func TestSleepKeysClamp(t *testing.T) {
	w := wellness.New(healthAt(12))
	_, cmd := w.Update(runes("]"))
	if msg := cmd().(wellness.SleepMsg); msg.Hours != 12 {
		t.Errorf("sleep above max = %v, want 12", msg.Hours)
	}

	w = wellness.New(healthAt(0))
	_, cmd = w.Update(runes("["))
	if msg := cmd().(wellness.SleepMsg); msg.Hours != 0 {
		t.Errorf("sleep below min = %v, want 0", msg.Hours)
	}
}

func TestNoteIntents(t *testing.T) {
	m, d, _ := setupModel(t)

	m, _ = send(t, m, notepad.EditNoteMsg{Text: "hello"})
	if d.Notes.Draft() != "hello" || !d.Notes.Dirty() {
		t.Errorf("Draft() = %q", d.Notes.Draft())
	}
	_, _ = send(t, m, notepad.SaveNoteMsg{})
	if d.Notes.Saved() != "hello" {
		t.Errorf("Saved() = %q", d.Notes.Saved())
	}
}

func TestPersistFailureShowsNotice(t *testing.T) {
	m, d, p := setupModel(t)
	g, _ := d.Goals.Add("Read")
	p.FailWrites(errors.New("quota exceeded"))

	m, cmd := send(t, m, goallist.ToggleGoalMsg{ID: g.ID})
	if cmd == nil {
		t.Fatal("a failed write should schedule the notice to clear")
	}
	if !strings.Contains(m.Notice(), "goals") {
		t.Errorf("Notice() = %q", m.Notice())
	}
	if got, _ := d.Goals.Find(g.ID); !got.Done {
		t.Error("the toggle should still apply for this session")
	}

	m, _ = send(t, m, clearNoticeMsg{id: m.noticeID})
	if m.Notice() != "" {
		t.Errorf("Notice() after clear = %q", m.Notice())
	}
}

func healthAt(sleep float64) health.Snapshot {
	return health.Snapshot{
		Metrics: models.HealthMetrics{Sleep: sleep},
		Mood:    models.DefaultMoodEntry(),
	}
}
