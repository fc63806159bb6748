// Package health tracks the daily water/steps/sleep record and the mood
// record. The two are persisted under separate keys.
package health

import (
	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/models"
	"github.com/julianstephens/dashlit/internal/state"
	"github.com/julianstephens/dashlit/internal/storage"
)

// Snapshot is both records as the presentation layer renders them
type Snapshot struct {
	Metrics models.HealthMetrics
	Mood    models.MoodEntry
}

type Store struct {
	metrics   *state.Synced[models.HealthMetrics]
	mood      *state.Synced[models.MoodEntry]
	listeners state.Listeners[Snapshot]
}

func New(store *storage.Store) *Store {
	s := &Store{
		metrics: state.New(store, constants.KeyHealth, models.DefaultHealth(), models.HealthMetrics.Validate),
		mood:    state.New(store, constants.KeyMood, models.DefaultMoodEntry(), models.MoodEntry.Validate),
	}
	s.metrics.Subscribe(func(models.HealthMetrics) { s.listeners.Notify(s.Snapshot()) })
	s.mood.Subscribe(func(models.MoodEntry) { s.listeners.Notify(s.Snapshot()) })
	return s
}

func (s *Store) Snapshot() Snapshot {
	return Snapshot{Metrics: s.metrics.Get(), Mood: s.mood.Get()}
}

func (s *Store) Metrics() models.HealthMetrics {
	return s.metrics.Get()
}

func (s *Store) Mood() models.MoodEntry {
	return s.mood.Get()
}

func (s *Store) updateMetrics(fn func(*models.HealthMetrics)) error {
	current := s.metrics.Get()
	next := current
	fn(&next)
	if next == current {
		return nil
	}
	return s.metrics.Set(next)
}

// IncrementWater adds one cup
func (s *Store) IncrementWater() error {
	return s.updateMetrics(func(m *models.HealthMetrics) { m.Water++ })
}

// DecrementWater removes one cup, never going below zero
func (s *Store) DecrementWater() error {
	return s.updateMetrics(func(m *models.HealthMetrics) { m.Water = max(0, m.Water-1) })
}

// IncrementSteps adds delta steps. A delta of zero or less uses the default
// step of 500.
func (s *Store) IncrementSteps(delta int) error {
	delta = stepDelta(delta)
	return s.updateMetrics(func(m *models.HealthMetrics) { m.Steps += delta })
}

// DecrementSteps removes delta steps, never going below zero
func (s *Store) DecrementSteps(delta int) error {
	delta = stepDelta(delta)
	return s.updateMetrics(func(m *models.HealthMetrics) { m.Steps = max(0, m.Steps-delta) })
}

// SetSleep records hours slept. Callers keep hours within
// [constants.MinSleepHours, constants.MaxSleepHours].
func (s *Store) SetSleep(hours float64) error {
	return s.updateMetrics(func(m *models.HealthMetrics) { m.Sleep = hours })
}

// SetMood selects a mood from the scale. Symbols off the scale are ignored.
func (s *Store) SetMood(mood models.Mood) error {
	if !mood.Valid() {
		return nil
	}
	entry := s.mood.Get()
	if entry.Value == mood {
		return nil
	}
	entry.Value = mood
	return s.mood.Set(entry)
}

// SetMoodNote replaces the free-form mood note
func (s *Store) SetMoodNote(note string) error {
	entry := s.mood.Get()
	if entry.Note == note {
		return nil
	}
	entry.Note = note
	return s.mood.Set(entry)
}

func (s *Store) Subscribe(fn func(Snapshot)) func() {
	return s.listeners.Add(fn)
}

// Err returns the most recent write failure of either record
func (s *Store) Err() error {
	if err := s.metrics.Err(); err != nil {
		return err
	}
	return s.mood.Err()
}

func stepDelta(delta int) int {
	if delta <= 0 {
		return constants.DefaultStepDelta
	}
	return delta
}
