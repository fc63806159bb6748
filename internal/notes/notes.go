// Package notes holds the free-text note with an explicit save step.
package notes

import (
	"time"

	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/state"
	"github.com/julianstephens/dashlit/internal/storage"
)

// View is what the presentation layer renders
type View struct {
	Draft   string
	Saved   string
	SavedAt time.Time // zero until the first Save of this session
}

func (v View) Dirty() bool {
	return v.Draft != v.Saved
}

type Option func(*Store)

// WithClock overrides time.Now for the saved-at stamp
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Store keeps an editable draft separate from the persisted note. Only Save
// writes to storage. The saved-at time lives in memory and is lost on reload.
type Store struct {
	cell      *state.Synced[string]
	draft     string
	savedAt   time.Time
	now       func() time.Time
	listeners state.Listeners[View]
}

func New(store *storage.Store, opts ...Option) *Store {
	s := &Store{
		cell: state.New(store, constants.KeyNote, "", nil),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.draft = s.cell.Get()
	return s
}

// Edit replaces the draft without persisting it
func (s *Store) Edit(text string) {
	if text == s.draft {
		return
	}
	s.draft = text
	s.listeners.Notify(s.View())
}

// Save persists the draft and stamps the saved-at time
func (s *Store) Save() error {
	s.savedAt = s.now()
	err := s.cell.Set(s.draft)
	s.listeners.Notify(s.View())
	return err
}

func (s *Store) Draft() string {
	return s.draft
}

// Saved returns the last committed note
func (s *Store) Saved() string {
	return s.cell.Get()
}

// SavedAt returns when the note was last saved in this session
func (s *Store) SavedAt() (time.Time, bool) {
	return s.savedAt, !s.savedAt.IsZero()
}

func (s *Store) Dirty() bool {
	return s.draft != s.cell.Get()
}

func (s *Store) View() View {
	return View{Draft: s.draft, Saved: s.cell.Get(), SavedAt: s.savedAt}
}

func (s *Store) Subscribe(fn func(View)) func() {
	return s.listeners.Add(fn)
}

func (s *Store) Err() error {
	return s.cell.Err()
}
