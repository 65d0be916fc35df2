package web

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"portfolio/internal/content"
	"portfolio/internal/state"
)

// Query parameter names.
const (
	ParamScreen   = "screen"
	ParamTheme    = "theme"
	ParamExpanded = "expanded"
)

// DecodeState reads an AppState from query values. Absent parameters keep
// their initial values; "none" or an empty expanded means nothing expanded.
// An expanded id must name an existing experience record.
func DecodeState(q url.Values) (state.AppState, error) {
	s := state.Initial()
	if v := q.Get(ParamScreen); v != "" {
		screen, err := state.ParseScreen(v)
		if err != nil {
			return state.AppState{}, fmt.Errorf("%s: %w", ParamScreen, err)
		}
		s.Screen = screen
	}
	if v := q.Get(ParamTheme); v != "" {
		theme, err := state.ParseTheme(v)
		if err != nil {
			return state.AppState{}, fmt.Errorf("%s: %w", ParamTheme, err)
		}
		s.Theme = theme
	}
	if v := q.Get(ParamExpanded); v != "" && v != "none" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return state.AppState{}, fmt.Errorf("%s: %q is not an id", ParamExpanded, v)
		}
		if _, err := content.ExperienceByID(id); err != nil {
			return state.AppState{}, fmt.Errorf("%s: %w", ParamExpanded, err)
		}
		s.Expanded = state.Expanded(id)
	}
	return s, nil
}

// EncodeState is the inverse of DecodeState. Expanded is omitted when unset.
func EncodeState(s state.AppState) url.Values {
	q := url.Values{}
	q.Set(ParamScreen, strings.ToLower(s.Screen.String()))
	q.Set(ParamTheme, s.Theme.String())
	if id, ok := s.Expanded.ID(); ok {
		q.Set(ParamExpanded, strconv.Itoa(id))
	}
	return q
}

// Link returns the page URL for the state that results from applying ev to s.
func Link(s state.AppState, ev state.Event) string {
	return "/?" + EncodeState(state.Reduce(s, ev)).Encode()
}
