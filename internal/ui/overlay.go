package ui

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// Overlay is a popup view drawn over the body, closed by any of its dismiss keys.
type Overlay struct {
	View    View
	Dismiss []string
}

// IsDismissKey returns true if the given key string should dismiss this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return slices.Contains(o.Dismiss, key)
}

// OverlayStack manages a stack of overlays (topmost receives input first).
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// HelpOverlay lists every binding available on the current screen.
type HelpOverlay struct {
	KeyMap KeyMap
	Styles Styles
}

var _ View = (*HelpOverlay)(nil)

func (h *HelpOverlay) Init() tea.Cmd { return nil }
func (h *HelpOverlay) Update(tea.Msg) (View, tea.Cmd) { return h, nil }

// View implements View.
func (h *HelpOverlay) View() string {
	m := help.New()
	m.ShowAll = true
	m.Styles.FullKey = h.Styles.Key
	m.Styles.FullDesc = h.Styles.Hint
	m.Styles.FullSeparator = h.Styles.Hint
	title := h.Styles.Headline.Render("Keys") + "\n\n"
	return h.Styles.HelpBox.Render(title + m.View(h.KeyMap) + "\n\n" + h.Styles.Hint.Render("esc or ? to close"))
}
