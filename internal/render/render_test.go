package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/content"
	"portfolio/internal/state"
)

func bullets(md string) int {
	n := 0
	for _, line := range strings.Split(md, "\n") {
		if strings.HasPrefix(line, "- ") {
			n++
		}
	}
	return n
}

func TestMarkdown_Home(t *testing.T) {
	md := Markdown(state.Initial())
	assert.Contains(t, md, "# Ashish Tyagi")
	assert.Contains(t, md, "Senior Technical Lead")
	assert.Contains(t, md, "(mailto:tyagiashish056@gmail.com)")
	assert.Contains(t, md, "(https://www.linkedin.com/in/ashish-tyagi-9a875292)")
	assert.Contains(t, md, "(https://github.com)")
	for _, s := range content.Skills() {
		assert.Contains(t, md, "`"+s+"`")
	}
	assert.Contains(t, md, "**Home** | Experience | Resume")
}

func TestMarkdown_ExperienceScenario(t *testing.T) {
	s := state.Reduce(state.Initial(), state.SelectScreen{Target: state.ScreenExperience})
	md := Markdown(s)
	assert.Equal(t, 6, bullets(md))
	assert.Equal(t, 2, strings.Count(md, "_Show more_"))

	s = state.Reduce(s, state.ToggleExpansion{ID: 1001})
	md = Markdown(s)
	assert.Equal(t, 7+3, bullets(md))
	assert.Equal(t, 1, strings.Count(md, "_Show less_"))

	s = state.Reduce(s, state.ToggleExpansion{ID: 1002})
	md = Markdown(s)
	assert.Equal(t, 3+8, bullets(md))
	first := strings.Index(md, "_Show more_")
	second := strings.Index(md, "_Show less_")
	assert.True(t, first >= 0 && second > first, "1001 collapsed before 1002 expanded")
}

func TestMarkdown_ResumeIndependentOfState(t *testing.T) {
	plain := Markdown(state.AppState{Screen: state.ScreenResume})
	busy := Markdown(state.AppState{Screen: state.ScreenResume, Theme: state.ThemeDark, Expanded: state.Expanded(1001)})
	assert.Equal(t, plain, busy)

	assert.Equal(t, 5, bullets(plain))
	order := []string{
		"PG Diploma in Mobile Computing",
		"B.Tech Computer Science",
		"Awards & Honors",
		"Rockstar",
		"Hall of Fame",
		"Best Associate IT Consultant",
	}
	last := -1
	for _, s := range order {
		i := strings.Index(plain, s)
		require.Greater(t, i, last, s)
		last = i
	}
}

func TestTerminal_RendersBothThemes(t *testing.T) {
	for _, th := range []state.Theme{state.ThemeLight, state.ThemeDark} {
		out, err := Terminal(state.AppState{Screen: state.ScreenResume, Theme: th}, 60)
		require.NoError(t, err)
		assert.Contains(t, out, "Rockstar")
	}
}
