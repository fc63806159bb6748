package models

import (
	"strings"

	"github.com/julianstephens/dashlit/internal/constants"
)

// HealthMetrics is the persisted water/steps/sleep record
type HealthMetrics struct {
	Water int     `json:"water" validate:"gte=0"` // cups
	Steps int     `json:"steps" validate:"gte=0"`
	Sleep float64 `json:"sleep" validate:"gte=0,lte=12"` // hours
}

// DefaultHealth returns the record used when nothing valid is stored
func DefaultHealth() HealthMetrics {
	return HealthMetrics{
		Water: constants.DefaultWater,
		Steps: constants.DefaultSteps,
		Sleep: constants.DefaultSleep,
	}
}

type healthWire struct {
	Water *int     `json:"water" validate:"required"`
	Steps *int     `json:"steps" validate:"required"`
	Sleep *float64 `json:"sleep" validate:"required"`
}

// UnmarshalJSON requires every field and rejects unknown ones
func (h *HealthMetrics) UnmarshalJSON(data []byte) error {
	var w healthWire
	if err := decodeStrict(data, &w); err != nil {
		return err
	}
	*h = HealthMetrics{Water: *w.Water, Steps: *w.Steps, Sleep: *w.Sleep}
	return nil
}

// Validate checks the field ranges
func (h HealthMetrics) Validate() error {
	return validate.Struct(h)
}

// Mood is one symbol from a fixed five-point scale
type Mood string

const (
	MoodLow     Mood = "😔"
	MoodDown    Mood = "🙁"
	MoodNeutral Mood = "😐"
	MoodGood    Mood = "🙂"
	MoodGreat   Mood = "😄"
)

// Moods lists the scale from lowest to highest
var Moods = []Mood{MoodLow, MoodDown, MoodNeutral, MoodGood, MoodGreat}

var moodNames = map[Mood]string{
	MoodLow:     "low",
	MoodDown:    "down",
	MoodNeutral: "neutral",
	MoodGood:    "good",
	MoodGreat:   "great",
}

// Valid reports whether m is on the scale
func (m Mood) Valid() bool {
	_, ok := moodNames[m]
	return ok
}

// Name returns the word used for m on the command line
func (m Mood) Name() string {
	return moodNames[m]
}

// ParseMood accepts a symbol, a name ("good") or a 1-based scale position.
func ParseMood(s string) (Mood, bool) {
	s = strings.TrimSpace(s)
	if Mood(s).Valid() {
		return Mood(s), true
	}
	lower := strings.ToLower(s)
	for m, name := range moodNames {
		if name == lower {
			return m, true
		}
	}
	if len(s) == 1 && s[0] >= '1' && s[0] <= '5' {
		return Moods[s[0]-'1'], true
	}
	return "", false
}

// MoodEntry is the persisted mood record
type MoodEntry struct {
	Value Mood   `json:"value" validate:"mood"`
	Note  string `json:"note"`
}

// DefaultMoodEntry returns the neutral-positive default mood
func DefaultMoodEntry() MoodEntry {
	return MoodEntry{Value: MoodGood}
}

type moodWire struct {
	Value *Mood   `json:"value" validate:"required"`
	Note  *string `json:"note" validate:"required"`
}

func (e *MoodEntry) UnmarshalJSON(data []byte) error {
	var w moodWire
	if err := decodeStrict(data, &w); err != nil {
		return err
	}
	*e = MoodEntry{Value: *w.Value, Note: *w.Note}
	return nil
}

// Validate checks that the mood value is on the scale
func (e MoodEntry) Validate() error {
	return validate.Struct(e)
}
