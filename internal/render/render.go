// Package render produces non-interactive renderings of an AppState: plain
// markdown, and glamour-styled terminal output matching the state's theme.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"portfolio/internal/content"
	"portfolio/internal/state"
)

// Markdown renders the active screen of s, followed by the tab bar.
func Markdown(s state.AppState) string {
	var b strings.Builder
	switch s.Screen {
	case state.ScreenExperience:
		writeExperience(&b, s)
	case state.ScreenResume:
		writeResume(&b)
	default:
		writeHome(&b)
	}
	b.WriteString("\n---\n\n")
	b.WriteString(navLine(s.Screen))
	b.WriteString("\n")
	return b.String()
}

// Terminal renders Markdown(s) for a terminal of the given width.
func Terminal(s state.AppState, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(s.Theme.String()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("render: new renderer: %w", err)
	}
	out, err := r.Render(Markdown(s))
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return out, nil
}

func writeHome(b *strings.Builder) {
	p := content.Profile()
	fmt.Fprintf(b, "# %s\n\n", p.Name)
	fmt.Fprintf(b, "## %s\n\n", p.Headline)
	fmt.Fprintf(b, "*%s*\n\n", p.Tagline)
	fmt.Fprintf(b, "%s\n\n", p.Bio)

	links := make([]string, 0, 3)
	for _, a := range content.Actions() {
		links = append(links, fmt.Sprintf("[%s](%s)", a.Label, a.Target))
	}
	b.WriteString(strings.Join(links, " · "))
	b.WriteString("\n\n### Skills\n\n")

	chips := make([]string, 0, len(content.Skills()))
	for _, s := range content.Skills() {
		chips = append(chips, "`"+s+"`")
	}
	b.WriteString(strings.Join(chips, " "))
	b.WriteString("\n")
}

func writeExperience(b *strings.Builder, s state.AppState) {
	b.WriteString("# Experience\n")
	for _, c := range state.Cards(s, content.Experiences()) {
		e := c.Experience
		fmt.Fprintf(b, "\n### %s\n\n", e.Title)
		fmt.Fprintf(b, "**%s • %s**\n\n", e.Company, e.Duration)
		for _, r := range c.Visible {
			fmt.Fprintf(b, "- %s\n", r)
		}
		fmt.Fprintf(b, "\n_%s_\n", c.Label)
	}
}

func writeResume(b *strings.Builder) {
	writeEntries(b, "Education", content.Education())
	b.WriteString("\n")
	writeEntries(b, "Awards & Honors", content.Awards())
}

func writeEntries(b *strings.Builder, heading string, entries []content.Entry) {
	fmt.Fprintf(b, "# %s\n\n", heading)
	for _, e := range entries {
		fmt.Fprintf(b, "- **%s**  \n  %s\n", e.Title, e.Subtitle)
	}
}

func navLine(active state.Screen) string {
	parts := make([]string, 0, 3)
	for _, s := range state.Screens() {
		if s == active {
			parts = append(parts, "**"+s.String()+"**")
		} else {
			parts = append(parts, s.String())
		}
	}
	return strings.Join(parts, " | ")
}
