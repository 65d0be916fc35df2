package ui

import (
	"github.com/charmbracelet/lipgloss"

	"portfolio/internal/state"
)

// Palette is the set of colors for one theme.
type Palette struct {
	Accent    lipgloss.Color // titles, links, toggle labels
	Highlight lipgloss.Color // selected card, active tab
	Muted     lipgloss.Color // subtitles, hints
	Text      lipgloss.Color // body text
	Bar       lipgloss.Color // title and tab bar background
	BarText   lipgloss.Color
	Chip      lipgloss.Color // skill chip background
	Pulse     lipgloss.Color // alternate avatar border color
}

var lightPalette = Palette{
	Accent:    "25",
	Highlight: "162",
	Muted:     "244",
	Text:      "235",
	Bar:       "254",
	BarText:   "235",
	Chip:      "253",
	Pulse:     "68",
}

var darkPalette = Palette{
	Accent:    "86",
	Highlight: "205",
	Muted:     "241",
	Text:      "252",
	Bar:       "236",
	BarText:   "252",
	Chip:      "238",
	Pulse:     "37",
}

// Styles contains the style definitions shared by the shell and screens.
type Styles struct {
	Palette Palette

	// Shell
	TitleBar  lipgloss.Style
	TitleName lipgloss.Style
	TabBar    lipgloss.Style
	Tab       lipgloss.Style
	TabActive lipgloss.Style
	Hint      lipgloss.Style
	HelpBox   lipgloss.Style
	LeaderBox lipgloss.Style

	// Home
	Avatar   lipgloss.Style
	Headline lipgloss.Style
	Tagline  lipgloss.Style
	Body     lipgloss.Style
	Action   lipgloss.Style
	Key      lipgloss.Style
	Section  lipgloss.Style
	Chip     lipgloss.Style

	// Experience
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	CardTitle    lipgloss.Style
	CardMeta     lipgloss.Style
	Toggle       lipgloss.Style

	// Resume
	EntryTitle    lipgloss.Style
	EntrySubtitle lipgloss.Style
}

func newStyles(p Palette) Styles {
	return Styles{
		Palette: p,
		TitleBar: lipgloss.NewStyle().
			Background(p.Bar).
			Foreground(p.BarText).
			Padding(0, 1),
		TitleName: lipgloss.NewStyle().
			Background(p.Bar).
			Foreground(p.Accent).
			Bold(true),
		TabBar: lipgloss.NewStyle().
			Background(p.Bar).
			Foreground(p.BarText),
		Tab: lipgloss.NewStyle().
			Background(p.Bar).
			Foreground(p.Muted).
			Padding(0, 2),
		TabActive: lipgloss.NewStyle().
			Background(p.Highlight).
			Foreground(lipgloss.Color("255")).
			Bold(true).
			Padding(0, 2),
		Hint: lipgloss.NewStyle().
			Foreground(p.Muted),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Highlight).
			Padding(1, 2),
		LeaderBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Padding(0, 1),
		Avatar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Accent).
			Foreground(p.Accent).
			Padding(0, 2),
		Headline: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),
		Tagline: lipgloss.NewStyle().
			Foreground(p.Accent),
		Body: lipgloss.NewStyle().
			Foreground(p.Text),
		Action: lipgloss.NewStyle().
			Foreground(p.Accent).
			Underline(true),
		Key: lipgloss.NewStyle().
			Foreground(p.Highlight).
			Bold(true),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Highlight).
			MarginTop(1),
		Chip: lipgloss.NewStyle().
			Background(p.Chip).
			Foreground(p.Text).
			Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Muted).
			Padding(0, 1),
		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Highlight).
			Padding(0, 1),
		CardTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),
		CardMeta: lipgloss.NewStyle().
			Foreground(p.Accent),
		Toggle: lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true),
		EntryTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.Text),
		EntrySubtitle: lipgloss.NewStyle().
			Foreground(p.Muted),
	}
}

var (
	lightStyles = newStyles(lightPalette)
	darkStyles  = newStyles(darkPalette)
)

// StylesFor returns the styles for a theme.
func StylesFor(t state.Theme) Styles {
	if t.Dark() {
		return darkStyles
	}
	return lightStyles
}
