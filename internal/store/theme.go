package store

import (
	"fmt"
	"strings"
)

type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

// ParseThemeMode accepts "light" or "dark", case-insensitively.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch ThemeMode(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight, "":
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
	}
}

// Theme holds the UI theme mode.
type Theme struct {
	*Store[ThemeMode]
}

func NewTheme(initial ThemeMode) *Theme {
	if initial != ThemeDark {
		initial = ThemeLight
	}
	return &Theme{Store: New(initial, WithEqual(func(a, b ThemeMode) bool { return a == b }))}
}

// Toggle flips light and dark.
func (t *Theme) Toggle() {
	t.Update(func(m ThemeMode) ThemeMode {
		if m == ThemeLight {
			return ThemeDark
		}
		return ThemeLight
	})
}
