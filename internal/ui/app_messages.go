package ui

import (
	"time"

	"portfolio/internal/content"
	"portfolio/internal/state"
)

// DispatchMsg carries a state event from a view or keybinding to the shell,
// which applies it through state.Store.Dispatch.
type DispatchMsg struct {
	Event state.Event
}

// CycleScreenMsg selects the next (Delta > 0) or previous (Delta < 0) screen in tab order.
type CycleScreenMsg struct {
	Delta int
}

// OpenActionMsg asks the shell to open a home screen action (m, l, g).
type OpenActionMsg struct {
	Action content.Action
}

// ToggleHelpMsg shows or hides the full help overlay (?).
type ToggleHelpMsg struct{}

// pulseMsg drives the cosmetic avatar pulse on the home screen.
type pulseMsg time.Time
