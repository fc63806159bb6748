// Package goals is the daily goals checklist.
package goals

import (
	"slices"
	"strings"

	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/ids"
	"github.com/julianstephens/dashlit/internal/models"
	"github.com/julianstephens/dashlit/internal/state"
	"github.com/julianstephens/dashlit/internal/storage"
)

// List is an ordered, newest-first list of goals persisted under the goals
// key. Intents only return an error when the write fails.
type List struct {
	cell *state.Synced[[]models.Goal]
	ids  ids.Generator
}

func New(store *storage.Store, gen ids.Generator) *List {
	return &List{
		cell: state.New(store, constants.KeyGoals, []models.Goal{}, models.ValidateGoals),
		ids:  gen,
	}
}

// Snapshot returns a copy of the goals, newest first
func (l *List) Snapshot() []models.Goal {
	return slices.Clone(l.cell.Get())
}

// Add prepends a goal with the trimmed text. Blank text is ignored and the
// zero Goal is returned.
func (l *List) Add(text string) (models.Goal, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Goal{}, nil
	}

	goal := models.Goal{ID: l.ids.NewID(), Text: text}
	next := make([]models.Goal, 0, len(l.cell.Get())+1)
	next = append(next, goal)
	next = append(next, l.cell.Get()...)
	return goal, l.cell.Set(next)
}

// Toggle flips the done flag of the goal with id. Unknown ids are ignored.
func (l *List) Toggle(id string) error {
	current := l.cell.Get()
	i := l.index(id)
	if i < 0 {
		return nil
	}
	next := slices.Clone(current)
	next[i].Done = !next[i].Done
	return l.cell.Set(next)
}

// Remove deletes the goal with id. Unknown ids are ignored.
func (l *List) Remove(id string) error {
	i := l.index(id)
	if i < 0 {
		return nil
	}
	next := slices.Delete(slices.Clone(l.cell.Get()), i, i+1)
	return l.cell.Set(next)
}

// Find returns the goal with id
func (l *List) Find(id string) (models.Goal, bool) {
	i := l.index(id)
	if i < 0 {
		return models.Goal{}, false
	}
	return l.cell.Get()[i], true
}

// Counts returns how many goals are done and how many exist
func (l *List) Counts() (done, total int) {
	for _, g := range l.cell.Get() {
		if g.Done {
			done++
		}
	}
	return done, len(l.cell.Get())
}

func (l *List) Subscribe(fn func([]models.Goal)) func() {
	return l.cell.Subscribe(func(goals []models.Goal) { fn(slices.Clone(goals)) })
}

// Err returns the outcome of the last write
func (l *List) Err() error {
	return l.cell.Err()
}

func (l *List) index(id string) int {
	return slices.IndexFunc(l.cell.Get(), func(g models.Goal) bool { return g.ID == id })
}
