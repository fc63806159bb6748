package models

import (
	"fmt"
	"strings"
)

// Theme is the dashboard color scheme
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is light or dark
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether t is the dark theme
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// ValidateTheme rejects anything but "light" and "dark"
func ValidateTheme(t Theme) error {
	return validate.Var(string(t), "theme")
}

// ParseTheme parses a case-insensitive theme name
func ParseTheme(s string) (Theme, error) {
	t := Theme(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("invalid theme %q (want light or dark)", s)
	}
	return t, nil
}
