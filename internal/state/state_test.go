package state

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/content"
)

func TestInitial(t *testing.T) {
	s := Initial()
	assert.Equal(t, ScreenHome, s.Screen)
	assert.Equal(t, ThemeLight, s.Theme)
	assert.True(t, s.Expanded.None())
}

func TestReduce_SelectScreenLeavesOtherAxes(t *testing.T) {
	start := AppState{Screen: ScreenHome, Theme: ThemeDark, Expanded: Expanded(1002)}
	seq := []Screen{ScreenExperience, ScreenResume, ScreenResume, ScreenHome, ScreenExperience}

	s := start
	for _, target := range seq {
		s = Reduce(s, SelectScreen{Target: target})
		assert.Equal(t, target, s.Screen)
		assert.Equal(t, start.Theme, s.Theme)
		assert.Equal(t, start.Expanded, s.Expanded)
	}
}

func TestReduce_SelectScreenIdempotent(t *testing.T) {
	s := Reduce(Initial(), SelectScreen{Target: ScreenResume})
	assert.Equal(t, s, Reduce(s, SelectScreen{Target: ScreenResume}))
}

func TestReduce_ToggleThemeInvolution(t *testing.T) {
	for _, start := range []AppState{Initial(), {Screen: ScreenResume, Theme: ThemeDark, Expanded: Expanded(1001)}} {
		once := Reduce(start, ToggleTheme{})
		assert.NotEqual(t, start.Theme, once.Theme)
		assert.Equal(t, start.Screen, once.Screen)
		assert.Equal(t, start.Expanded, once.Expanded)
		assert.Equal(t, start, Reduce(once, ToggleTheme{}))
	}
}

func TestReduce_ToggleExpansionInvolution(t *testing.T) {
	for _, prior := range []Expansion{NoExpansion(), Expanded(1001), Expanded(1002)} {
		for _, e := range content.Experiences() {
			start := AppState{Screen: ScreenExperience, Expanded: prior}
			twice := Reduce(Reduce(start, ToggleExpansion{ID: e.ID}), ToggleExpansion{ID: e.ID})
			if prior.Is(e.ID) || prior.None() {
				assert.Equal(t, start, twice, "prior=%s id=%d", prior, e.ID)
			} else {
				// Toggling a different id twice collapses the other record.
				assert.True(t, twice.Expanded.None(), "prior=%s id=%d", prior, e.ID)
			}
		}
	}
}

func TestReduce_ToggleExpansionExclusive(t *testing.T) {
	s := Reduce(Initial(), ToggleExpansion{ID: 1001})
	assert.True(t, s.IsExpanded(1001))

	s = Reduce(s, ToggleExpansion{ID: 1002})
	assert.False(t, s.IsExpanded(1001))
	assert.True(t, s.IsExpanded(1002))
}

func TestReduce_InvalidScreenIgnored(t *testing.T) {
	s := Reduce(Initial(), SelectScreen{Target: Screen(42)})
	assert.Equal(t, Initial(), s)
}

func TestVisibleResponsibilities(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expanded bool
		want     int
	}{
		{"empty collapsed", 0, false, 0},
		{"two collapsed", 2, false, 2},
		{"three collapsed", 3, false, 3},
		{"three expanded", 3, true, 3},
		{"seven collapsed", 7, false, 3},
		{"seven expanded", 7, true, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := content.Experience{ID: 1}
			for i := 0; i < tt.n; i++ {
				e.Responsibilities = append(e.Responsibilities, string(rune('a'+i)))
			}
			got := VisibleResponsibilities(e, tt.expanded)
			require.Len(t, got, tt.want)
			if diff := cmp.Diff(e.Responsibilities[:tt.want], got); diff != "" {
				t.Errorf("prefix mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestThreeResponsibilityQuirk(t *testing.T) {
	e := content.Experience{ID: 7, Responsibilities: []string{"a", "b", "c"}}
	s := AppState{Screen: ScreenExperience}

	collapsed := Cards(s, []content.Experience{e})[0]
	expanded := Cards(Reduce(s, ToggleExpansion{ID: 7}), []content.Experience{e})[0]

	assert.Equal(t, collapsed.Visible, expanded.Visible)
	assert.Equal(t, "Show more", collapsed.Label)
	assert.Equal(t, "Show less", expanded.Label)
}

func TestExperienceScenario(t *testing.T) {
	s := Reduce(Initial(), SelectScreen{Target: ScreenExperience})
	list := content.Experiences()

	cards := Cards(s, list)
	require.Len(t, cards, 2)
	assert.Equal(t, 1001, cards[0].Experience.ID)
	assert.Equal(t, 1002, cards[1].Experience.ID)
	for _, c := range cards {
		assert.False(t, c.Expanded)
		assert.Len(t, c.Visible, 3)
		assert.Equal(t, "Show more", c.Label)
	}

	s = Reduce(s, ToggleExpansion{ID: 1001})
	cards = Cards(s, list)
	assert.Len(t, cards[0].Visible, 7)
	assert.Equal(t, "Show less", cards[0].Label)
	assert.Len(t, cards[1].Visible, 3)
	assert.Equal(t, "Show more", cards[1].Label)

	s = Reduce(s, ToggleExpansion{ID: 1002})
	cards = Cards(s, list)
	assert.Len(t, cards[0].Visible, 3)
	assert.Equal(t, "Show more", cards[0].Label)
	assert.Len(t, cards[1].Visible, 8)
	assert.Equal(t, "Show less", cards[1].Label)
}

func TestParseScreenAndTheme(t *testing.T) {
	for _, s := range Screens() {
		got, err := ParseScreen(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := ParseScreen("experience")
	require.NoError(t, err)
	assert.Equal(t, ScreenExperience, got)

	_, err = ParseScreen("settings")
	assert.True(t, errors.Is(err, ErrUnknownScreen))

	th, err := ParseTheme("DARK")
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, th)
	_, err = ParseTheme("sepia")
	assert.True(t, errors.Is(err, ErrUnknownTheme))
}

func TestScreenCycle(t *testing.T) {
	assert.Equal(t, ScreenExperience, ScreenHome.Next())
	assert.Equal(t, ScreenHome, ScreenResume.Next())
	assert.Equal(t, ScreenResume, ScreenHome.Prev())
	assert.Equal(t, ScreenHome, ScreenExperience.Prev())
}

func TestExpansionString(t *testing.T) {
	assert.Equal(t, "none", NoExpansion().String())
	assert.Equal(t, "1001", Expanded(1001).String())
	id, ok := Expanded(1002).ID()
	assert.True(t, ok)
	assert.Equal(t, 1002, id)
}
