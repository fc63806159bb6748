package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/julianstephens/dashlit/internal/ids"
	"github.com/julianstephens/dashlit/internal/models"
	"github.com/julianstephens/dashlit/internal/storage"
	"github.com/julianstephens/dashlit/internal/storage/memory"
	"github.com/julianstephens/dashlit/internal/theme"
)

func testOptions() Options {
	return Options{
		IDs:    ids.NewSequence("g"),
		TxIDs:  ids.NewSequence("tx"),
		Clock:  func() time.Time { return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC) },
		System: theme.Static(false),
	}
}

func TestFreshDashboard(t *testing.T) {
	d := New(storage.NewStore(memory.New()), testOptions())
	s := d.Summary()

	if s.GoalsTotal != 0 || s.Transactions != 0 || s.NoteLength != 0 {
		t.Errorf("Summary() = %+v, want empty widgets", s)
	}
	if !s.Balance.IsZero() {
		t.Errorf("Balance = %s", s.Balance)
	}
	if s.Health != models.DefaultHealth() || s.Mood != models.DefaultMoodEntry() {
		t.Errorf("Health = %+v, Mood = %+v", s.Health, s.Mood)
	}
	if s.Theme != models.ThemeLight || s.ThemeStored {
		t.Errorf("Theme = %q, stored = %v", s.Theme, s.ThemeStored)
	}
	if d.Errs() != nil {
		t.Errorf("Errs() = %v", d.Errs())
	}
}

func TestRoundTripAcrossReload(t *testing.T) {
	p := memory.New()
	d := New(storage.NewStore(p), testOptions())

	g, _ := d.Goals.Add("Read")
	_, _ = d.Goals.Add("Run")
	_ = d.Goals.Toggle(g.ID)
	d.Notes.Edit("hello")
	_ = d.Notes.Save()
	_, _ = d.Ledger.Add("Salary", "1000")
	_, _ = d.Ledger.Add("Coffee", "-3.5")
	_ = d.Health.IncrementWater()
	_ = d.Health.SetMood(models.MoodGreat)
	_ = d.Theme.Toggle()

	before := d.Summary()

	_ = p.Close()
	if err := p.Load(); err != nil {
		t.Fatal(err)
	}
	after := New(storage.NewStore(p), testOptions()).Summary()

	if after.GoalsDone != 1 || after.GoalsTotal != 2 {
		t.Errorf("goals = %d/%d", after.GoalsDone, after.GoalsTotal)
	}
	if after.NoteLength != 5 {
		t.Errorf("NoteLength = %d", after.NoteLength)
	}
	if !after.Balance.Equal(before.Balance) || after.Balance.StringFixed(2) != "996.50" {
		t.Errorf("Balance = %s", after.Balance)
	}
	if after.Health != before.Health || after.Mood != before.Mood {
		t.Errorf("health = %+v / %+v", after.Health, after.Mood)
	}
	if after.Theme != models.ThemeDark || !after.ThemeStored {
		t.Errorf("Theme = %q", after.Theme)
	}
}

func TestWidgetsOwnDisjointKeys(t *testing.T) {
	p := memory.New()
	d := New(storage.NewStore(p), testOptions())

	_, _ = d.Goals.Add("Read")
	_ = d.Notes.Save()
	_, _ = d.Ledger.Add("Tea", "-2")
	_ = d.Health.IncrementWater()
	_ = d.Health.SetMoodNote("ok")
	_ = d.Theme.Toggle()

	keys, _ := p.Keys()
	want := []string{"finances", "goals", "health", "mood", "note", "theme"}
	if len(keys) != len(want) {
		t.Fatalf("Keys() = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestCorruptKeyOnlyResetsItsWidget(t *testing.T) {
	p := memory.New()
	_ = p.Set("goals", []byte(`{broken`))
	_ = p.Set("finances", []byte(`[{"id":"1","label":"Salary","amount":10}]`))

	s := New(storage.NewStore(p), testOptions()).Summary()
	if s.GoalsTotal != 0 {
		t.Errorf("GoalsTotal = %d", s.GoalsTotal)
	}
	if s.Transactions != 1 || s.Balance.String() != "10" {
		t.Errorf("ledger = %d, %s", s.Transactions, s.Balance)
	}
}

func TestErrs(t *testing.T) {
	p := memory.New()
	d := New(storage.NewStore(p), testOptions())
	p.FailWrites(errors.New("quota exceeded"))

	_, _ = d.Goals.Add("Read")
	_ = d.Theme.Toggle()

	err := d.Errs()
	var pe *storage.PersistError
	if !errors.As(err, &pe) {
		t.Fatalf("Errs() = %v, want a *PersistError", err)
	}

	p.FailWrites(nil)
	_, _ = d.Goals.Add("Run")
	_ = d.Theme.Toggle()
	if d.Errs() != nil {
		t.Errorf("Errs() after recovery = %v", d.Errs())
	}
}
