package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"portfolio/internal/state"
)

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// ScreenView is a View shown as the shell body for one Screen.
// It renders from the shared store, so it is a function of the current
// AppState plus static content.
type ScreenView interface {
	View
	Screen() state.Screen
	SetWidth(w int)
	// HelpBindings lists keys the view handles itself.
	HelpBindings() []key.Binding
}
