package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dashlit/internal/models"
)

type palette struct {
	fg, bg, accent, tabBg, muted, danger, warning, income lipgloss.Color
}

var (
	lightPalette = palette{
		fg:      lipgloss.Color("235"),
		bg:      lipgloss.Color("255"),
		accent:  lipgloss.Color("161"),
		tabBg:   lipgloss.Color("252"),
		muted:   lipgloss.Color("245"),
		danger:  lipgloss.Color("160"),
		warning: lipgloss.Color("166"),
		income:  lipgloss.Color("28"),
	}
	darkPalette = palette{
		fg:      lipgloss.Color("252"),
		bg:      lipgloss.Color("234"),
		accent:  lipgloss.Color("205"),
		tabBg:   lipgloss.Color("236"),
		muted:   lipgloss.Color("240"),
		danger:  lipgloss.Color("196"),
		warning: lipgloss.Color("214"),
		income:  lipgloss.Color("42"),
	}
)

// Styles holds every style derived from the active theme
type Styles struct {
	Frame       lipgloss.Style
	ActiveTab   lipgloss.Style
	InactiveTab lipgloss.Style
	Header      lipgloss.Style
	Muted       lipgloss.Style
	Income      lipgloss.Style
	Expense     lipgloss.Style
	Notice      lipgloss.Style
	Highlight   lipgloss.Style
	Doc         lipgloss.Style
}

func NewStyles(theme models.Theme) Styles {
	p := lightPalette
	if theme.IsDark() {
		p = darkPalette
	}

	return Styles{
		Frame: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.bg),
		ActiveTab: lipgloss.NewStyle().
			Foreground(p.accent).
			Background(p.tabBg).
			Padding(0, 1).
			Bold(true),
		InactiveTab: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true).
			Padding(1, 2, 0, 2),
		Muted: lipgloss.NewStyle().
			Foreground(p.muted),
		Income: lipgloss.NewStyle().
			Foreground(p.income).
			Bold(true),
		Expense: lipgloss.NewStyle().
			Foreground(p.danger).
			Bold(true),
		Notice: lipgloss.NewStyle().
			Foreground(p.warning).
			Italic(true).
			Padding(0, 2),
		Highlight: lipgloss.NewStyle().
			Foreground(p.bg).
			Background(p.accent),
		Doc: lipgloss.NewStyle().Padding(1, 2),
	}
}

// formTheme picks the huh theme matching the dashboard theme
func formTheme(theme models.Theme) *huh.Theme {
	if theme.IsDark() {
		return huh.ThemeDracula()
	}
	return huh.ThemeBase()
}
