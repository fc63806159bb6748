package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName           = "dashlit"
	DefaultConfigPath = "~/.config/dashlit/dashlit.db"
	MemoryConfigPath  = ":memory:"
	Version           = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Storage keys. Each widget owns exactly one key, health owns two.
	KeyGoals    = "goals"
	KeyNote     = "note"
	KeyFinances = "finances"
	KeyHealth   = "health"
	KeyMood     = "mood"
	KeyTheme    = "theme"

	// Health defaults and limits
	DefaultWater     = 0
	DefaultSteps     = 0
	DefaultSleep     = 8.0
	DefaultStepDelta = 500
	MinSleepHours    = 0.0
	MaxSleepHours    = 12.0

	// JSON file store format version
	JSONStoreVersion = 1

	// Backups kept by rotation
	MaxBackups = 14

	// Notice is how long a persistence warning stays in the TUI footer
	NoticeDuration = 4 * time.Second
)

// Session States
const (
	StateGoals SessionState = iota
	StateNotes
	StateFinances
	StateHealth
	StateAddGoal
	StateAddTransaction
	StateEditMoodNote
)

// Tabs lists the main views in display order
var Tabs = []SessionState{StateGoals, StateNotes, StateFinances, StateHealth}
