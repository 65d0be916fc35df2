// Package state holds the portfolio's session state and the reducer that
// advances it.
//
// The whole app has one state machine: the product of three independent
// selectors (screen, theme, expanded experience). Every transition is an
// Event applied by Reduce; nothing else mutates AppState.
package state

import (
	"strconv"

	"portfolio/internal/content"
)

// CollapsedCount is how many responsibilities a collapsed card shows.
const CollapsedCount = 3

// Expansion is the single expanded experience id, or none.
// The zero value is none.
type Expansion struct {
	id  int
	set bool
}

// NoExpansion returns the empty selector.
func NoExpansion() Expansion { return Expansion{} }

// Expanded returns a selector holding id.
func Expanded(id int) Expansion { return Expansion{id: id, set: true} }

// ID returns the expanded id and whether one is set.
func (e Expansion) ID() (int, bool) { return e.id, e.set }

// Is reports whether id is the expanded record.
func (e Expansion) Is(id int) bool { return e.set && e.id == id }

// None reports whether nothing is expanded.
func (e Expansion) None() bool { return !e.set }

func (e Expansion) String() string {
	if !e.set {
		return "none"
	}
	return strconv.Itoa(e.id)
}

// AppState is the full session state.
type AppState struct {
	Screen   Screen
	Theme    Theme
	Expanded Expansion
}

// Initial returns the start-of-session state: Home, Light, nothing expanded.
func Initial() AppState {
	return AppState{
		Screen:   ScreenHome,
		Theme:    ThemeLight,
		Expanded: NoExpansion(),
	}
}

// IsExpanded reports whether the record with id is expanded in s.
func (s AppState) IsExpanded(id int) bool {
	return s.Expanded.Is(id)
}

// VisibleResponsibilities returns all responsibilities when expanded,
// otherwise the first CollapsedCount (or fewer). Order is preserved.
func VisibleResponsibilities(e content.Experience, expanded bool) []string {
	if expanded || len(e.Responsibilities) <= CollapsedCount {
		return append([]string(nil), e.Responsibilities...)
	}
	return append([]string(nil), e.Responsibilities[:CollapsedCount]...)
}

// ToggleLabel is the trailing label of a card.
// It toggles even when the visible content does not change.
func ToggleLabel(expanded bool) string {
	if expanded {
		return "Show less"
	}
	return "Show more"
}

// Card is the derived render model for one experience card.
type Card struct {
	Experience content.Experience
	Expanded   bool
	Visible    []string
	Label      string
}

// Cards derives one card per experience record, in record order.
func Cards(s AppState, list []content.Experience) []Card {
	cards := make([]Card, 0, len(list))
	for _, e := range list {
		exp := s.IsExpanded(e.ID)
		cards = append(cards, Card{
			Experience: e,
			Expanded:   exp,
			Visible:    VisibleResponsibilities(e, exp),
			Label:      ToggleLabel(exp),
		})
	}
	return cards
}
