package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	"portfolio/internal/content"
	"portfolio/internal/state"
)

func TestHomeView_ViewRendersProfile(t *testing.T) {
	h := NewHomeView(state.NewStore())
	h.SetWidth(120)
	out := h.View()

	p := content.Profile()
	for _, want := range []string{p.Headline, p.Tagline, "Skills", "Kotlin", "[m]", "[l]", "[g]", "Email", "LinkedIn", "GitHub"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in home view", want)
		}
	}
}

func TestHomeView_NarrowFallsBackToName(t *testing.T) {
	h := NewHomeView(state.NewStore())
	h.SetWidth(10)
	if out := h.View(); !strings.Contains(out, content.Profile().Name) {
		t.Errorf("expected plain name on a narrow terminal:\n%s", out)
	}
}

func TestHomeView_PulseToggles(t *testing.T) {
	h := NewHomeView(state.NewStore())
	h.Update(pulseMsg(time.Now()))
	if !h.Pulse {
		t.Error("expected Pulse after one tick")
	}
	h.Update(pulseMsg(time.Now()))
	if h.Pulse {
		t.Error("expected Pulse off after two ticks")
	}
	h.Update(keyMsg("j"))
	if h.Pulse {
		t.Error("keys should not affect Pulse")
	}
}

func TestResumeView_ViewListsEntriesInOrder(t *testing.T) {
	r := NewResumeView(state.NewStore())
	r.SetWidth(120)
	out := r.View()

	var order []string
	order = append(order, "Education")
	for _, e := range content.Education() {
		order = append(order, e.Title, e.Subtitle)
	}
	order = append(order, "Awards & Honors")
	for _, e := range content.Awards() {
		order = append(order, e.Title, e.Subtitle)
	}

	pos := 0
	for _, want := range order {
		i := strings.Index(out[pos:], want)
		if i < 0 {
			t.Fatalf("expected %q after offset %d in resume view:\n%s", want, pos, out)
		}
		pos += i + len(want)
	}
}

func TestResumeView_IgnoresThemeForContent(t *testing.T) {
	store := state.NewStore()
	r := NewResumeView(store)
	light := stripped(r.View())
	store.Dispatch(context.Background(), state.ToggleTheme{})
	dark := stripped(r.View())
	if light != dark {
		t.Error("theme should change colors only")
	}
}

// stripped collapses whitespace.
func stripped(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
