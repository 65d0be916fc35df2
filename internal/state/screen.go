package state

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownScreen = errors.New("unknown screen")
	ErrUnknownTheme  = errors.New("unknown theme")
)

// Screen is one of the three top-level views.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenExperience
	ScreenResume
)

// Screens returns all screens in tab bar order.
func Screens() []Screen {
	return []Screen{ScreenHome, ScreenExperience, ScreenResume}
}

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "Home"
	case ScreenExperience:
		return "Experience"
	case ScreenResume:
		return "Resume"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the defined screens.
func (s Screen) Valid() bool {
	return s >= ScreenHome && s <= ScreenResume
}

// Next returns the screen after s in tab order, wrapping around.
func (s Screen) Next() Screen {
	all := Screens()
	return all[(int(s)+1)%len(all)]
}

// Prev returns the screen before s in tab order, wrapping around.
func (s Screen) Prev() Screen {
	all := Screens()
	return all[(int(s)+len(all)-1)%len(all)]
}

// ParseScreen accepts a screen name case-insensitively.
func ParseScreen(name string) (Screen, error) {
	for _, s := range Screens() {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownScreen, name)
}

// Theme is the dark/light display mode.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "unknown"
	}
}

// Dark reports whether t is the dark theme.
func (t Theme) Dark() bool { return t == ThemeDark }

// ParseTheme accepts "light" or "dark" case-insensitively.
func ParseTheme(name string) (Theme, error) {
	switch strings.ToLower(name) {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}
