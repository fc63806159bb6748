// Package dashboard wires every widget to one store. The presentation layer
// holds a *Dashboard and never touches storage directly.
package dashboard

import (
	"errors"
	"time"

	"github.com/julianstephens/dashlit/internal/goals"
	"github.com/julianstephens/dashlit/internal/health"
	"github.com/julianstephens/dashlit/internal/ids"
	"github.com/julianstephens/dashlit/internal/ledger"
	"github.com/julianstephens/dashlit/internal/models"
	"github.com/julianstephens/dashlit/internal/notes"
	"github.com/julianstephens/dashlit/internal/storage"
	"github.com/julianstephens/dashlit/internal/theme"
	"github.com/shopspring/decimal"
)

// Options injects the nondeterministic capabilities. Zero values pick the
// production defaults.
type Options struct {
	IDs    ids.Generator // goal ids, defaults to ids.UUID
	TxIDs  ids.Generator // transaction ids, defaults to ids.TimeOrdered
	Clock  func() time.Time
	System theme.SystemPreference // defaults to theme.Terminal
}

type Dashboard struct {
	Goals  *goals.List
	Notes  *notes.Store
	Ledger *ledger.Store
	Health *health.Store
	Theme  *theme.Preference
	store  *storage.Store
}

func New(store *storage.Store, opts Options) *Dashboard {
	if opts.IDs == nil {
		opts.IDs = ids.UUID{}
	}
	if opts.TxIDs == nil {
		opts.TxIDs = ids.TimeOrdered{}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.System == nil {
		opts.System = theme.Terminal{}
	}

	return &Dashboard{
		Goals:  goals.New(store, opts.IDs),
		Notes:  notes.New(store, notes.WithClock(opts.Clock)),
		Ledger: ledger.New(store, ledger.WithIDs(opts.TxIDs), ledger.WithClock(opts.Clock)),
		Health: health.New(store),
		Theme:  theme.New(store, opts.System),
		store:  store,
	}
}

// Store returns the store the widgets persist to
func (d *Dashboard) Store() *storage.Store {
	return d.store
}

// Summary is a point-in-time view of every widget
type Summary struct {
	GoalsDone    int
	GoalsTotal   int
	NoteLength   int
	Transactions int
	Balance      decimal.Decimal
	Income       decimal.Decimal
	Expenses     decimal.Decimal
	Health       models.HealthMetrics
	Mood         models.MoodEntry
	Theme        models.Theme
	ThemeStored  bool
}

func (d *Dashboard) Summary() Summary {
	done, total := d.Goals.Counts()
	return Summary{
		GoalsDone:    done,
		GoalsTotal:   total,
		NoteLength:   len([]rune(d.Notes.Saved())),
		Transactions: len(d.Ledger.Snapshot()),
		Balance:      d.Ledger.Balance(),
		Income:       d.Ledger.Income(),
		Expenses:     d.Ledger.Expenses(),
		Health:       d.Health.Metrics(),
		Mood:         d.Health.Mood(),
		Theme:        d.Theme.Current(),
		ThemeStored:  d.Theme.Stored(),
	}
}

// Errs joins the last write failure of every widget, nil when all succeeded
func (d *Dashboard) Errs() error {
	return errors.Join(
		d.Goals.Err(),
		d.Notes.Err(),
		d.Ledger.Err(),
		d.Health.Err(),
		d.Theme.Err(),
	)
}
