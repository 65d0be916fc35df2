package state

import "fmt"

// Event is a user intent applied by Reduce.
// The set is closed: SelectScreen, ToggleTheme, ToggleExpansion.
type Event interface {
	isEvent()
	// Name identifies the event kind for logs and traces.
	Name() string
}

// SelectScreen makes Target the visible screen.
type SelectScreen struct {
	Target Screen
}

// ToggleTheme flips between light and dark.
type ToggleTheme struct{}

// ToggleExpansion expands ID, or collapses it if it is already expanded.
type ToggleExpansion struct {
	ID int
}

func (SelectScreen) isEvent()    {}
func (ToggleTheme) isEvent()     {}
func (ToggleExpansion) isEvent() {}

func (SelectScreen) Name() string    { return "select_screen" }
func (ToggleTheme) Name() string     { return "toggle_theme" }
func (ToggleExpansion) Name() string { return "toggle_expansion" }

func (e SelectScreen) String() string    { return fmt.Sprintf("SelectScreen(%s)", e.Target) }
func (ToggleTheme) String() string       { return "ToggleTheme" }
func (e ToggleExpansion) String() string { return fmt.Sprintf("ToggleExpansion(%d)", e.ID) }

// Reduce returns the state after applying ev to s. It never mutates s.
// The three selectors are orthogonal: each event touches exactly one.
func Reduce(s AppState, ev Event) AppState {
	switch ev := ev.(type) {
	case SelectScreen:
		if ev.Target.Valid() {
			s.Screen = ev.Target
		}
	case ToggleTheme:
		if s.Theme == ThemeDark {
			s.Theme = ThemeLight
		} else {
			s.Theme = ThemeDark
		}
	case ToggleExpansion:
		if s.Expanded.Is(ev.ID) {
			s.Expanded = NoExpansion()
		} else {
			s.Expanded = Expanded(ev.ID)
		}
	}
	return s
}
