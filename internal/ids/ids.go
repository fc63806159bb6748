// Package ids provides the unique id capability used for goals and
// transactions.
package ids

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator returns a new identifier on every call, unique within the
// lifetime of the stored data.
type Generator interface {
	NewID() string
}

// UUID generates random (version 4) UUIDs.
type UUID struct{}

func (UUID) NewID() string {
	return uuid.NewString()
}

// TimeOrdered generates version 7 UUIDs, which sort by creation time.
type TimeOrdered struct{}

func (TimeOrdered) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// only fails when the random source does
		return uuid.NewString()
	}
	return id.String()
}

// Sequence yields prefix-1, prefix-2, ... and is meant for tests.
type Sequence struct {
	Prefix string
	n      int
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{Prefix: prefix}
}

func (s *Sequence) NewID() string {
	s.n++
	return fmt.Sprintf("%s-%d", s.Prefix, s.n)
}
