// Package state binds an in-memory value to one key of a storage.Store.
package state

import (
	"errors"

	"github.com/julianstephens/dashlit/internal/logger"
	"github.com/julianstephens/dashlit/internal/storage"
)

// Synced holds a value hydrated from the store and written back on every Set.
// The in-memory value is authoritative: a failed write is reported but never
// rolls the value back.
type Synced[T any] struct {
	store     *storage.Store
	key       string
	value     T
	err       error
	listeners Listeners[T]
}

// New hydrates a cell for key. When the key is absent, cannot be decoded, or
// fails validate, the cell starts at def. validate may be nil.
func New[T any](store *storage.Store, key string, def T, validate func(T) error) *Synced[T] {
	s := &Synced[T]{store: store, key: key, value: def}

	var loaded T
	err := store.Get(key, &loaded)
	switch {
	case err == nil:
		if validate != nil {
			if verr := validate(loaded); verr != nil {
				logger.Warn("stored value failed validation, using default", "key", key, "err", verr)
				return s
			}
		}
		s.value = loaded
	case errors.Is(err, storage.ErrNotFound):
	default:
		logger.Warn("could not read stored value, using default", "key", key, "err", err)
	}
	return s
}

func (s *Synced[T]) Key() string {
	return s.key
}

// Get returns the current value. Slices and maps are shared with the cell,
// callers must not mutate them in place.
func (s *Synced[T]) Get() T {
	return s.value
}

// Set replaces the value, persists it, then notifies listeners. The returned
// error is a *storage.PersistError or nil, and is also kept for Err.
func (s *Synced[T]) Set(v T) error {
	s.value = v
	s.err = s.store.Set(s.key, v)
	if s.err != nil {
		logger.Warn("could not persist value", "key", s.key, "err", s.err)
	}
	s.listeners.Notify(v)
	return s.err
}

// Err returns the outcome of the most recent Set
func (s *Synced[T]) Err() error {
	return s.err
}

// Subscribe registers fn for every subsequent Set
func (s *Synced[T]) Subscribe(fn func(T)) func() {
	return s.listeners.Add(fn)
}
