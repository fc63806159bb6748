// Package theme resolves and persists the light/dark preference.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/julianstephens/dashlit/internal/constants"
	"github.com/julianstephens/dashlit/internal/models"
	"github.com/julianstephens/dashlit/internal/state"
	"github.com/julianstephens/dashlit/internal/storage"
)

// SystemPreference reports the environment's preferred color scheme. It is
// consulted only when no valid theme has been stored.
type SystemPreference interface {
	PrefersDark() bool
}

// Terminal asks the terminal whether its background is dark
type Terminal struct{}

func (Terminal) PrefersDark() bool {
	return lipgloss.HasDarkBackground()
}

// Static is a fixed preference
type Static bool

func (s Static) PrefersDark() bool {
	return bool(s)
}

// Preference is the current theme. Startup resolution is: stored value,
// then the system preference, then light. Resolution never writes.
type Preference struct {
	cell     *state.Synced[models.Theme]
	resolved models.Theme
}

func New(store *storage.Store, system SystemPreference) *Preference {
	p := &Preference{
		cell: state.New(store, constants.KeyTheme, models.Theme(""), models.ValidateTheme),
	}
	switch {
	case p.cell.Get().Valid():
		p.resolved = p.cell.Get()
	case system != nil && system.PrefersDark():
		p.resolved = models.ThemeDark
	default:
		p.resolved = models.ThemeLight
	}
	return p
}

// Current returns the active theme
func (p *Preference) Current() models.Theme {
	return p.resolved
}

// Stored reports whether the theme came from storage rather than the system
func (p *Preference) Stored() bool {
	return p.cell.Get().Valid()
}

// Toggle flips the theme and persists it
func (p *Preference) Toggle() error {
	p.resolved = p.resolved.Toggle()
	return p.cell.Set(p.resolved)
}

// Set persists t. Invalid themes are ignored.
func (p *Preference) Set(t models.Theme) error {
	if !t.Valid() {
		return nil
	}
	p.resolved = t
	return p.cell.Set(t)
}

func (p *Preference) Subscribe(fn func(models.Theme)) func() {
	return p.cell.Subscribe(fn)
}

func (p *Preference) Err() error {
	return p.cell.Err()
}
