package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"

	"portfolio/internal/content"
	"portfolio/internal/state"
	"portfolio/internal/ui/textutil"
)

// bannerFont is the go-figure font used for the profile banner.
const bannerFont = "small"

// HomeView shows the profile, the external actions and the skills.
type HomeView struct {
	store  *state.Store
	width  int
	banner string
	// Pulse alternates the avatar border color. Cosmetic only.
	Pulse bool
}

var _ ScreenView = (*HomeView)(nil)

// NewHomeView creates the home screen.
func NewHomeView(store *state.Store) *HomeView {
	fig := figure.NewFigure(content.Profile().Name, bannerFont, true).String()
	return &HomeView{
		store:  store,
		width:  defaultWidth,
		banner: strings.TrimRight(fig, "\n"),
	}
}

// Screen implements ScreenView.
func (h *HomeView) Screen() state.Screen { return state.ScreenHome }

// SetWidth implements ScreenView.
func (h *HomeView) SetWidth(w int) { h.width = w }

// HelpBindings implements ScreenView. Action keys live in the registry.
func (h *HomeView) HelpBindings() []key.Binding { return nil }

// Init implements View.
func (h *HomeView) Init() tea.Cmd { return nil }

// Update implements View.
func (h *HomeView) Update(msg tea.Msg) (View, tea.Cmd) {
	if _, ok := msg.(pulseMsg); ok {
		h.Pulse = !h.Pulse
	}
	return h, nil
}

// View implements View.
func (h *HomeView) View() string {
	st := StylesFor(h.store.State().Theme)
	p := content.Profile()
	w := contentWidth(h.width)

	var b strings.Builder
	b.WriteString(h.avatar(st, w))
	b.WriteString("\n\n")
	b.WriteString(st.Headline.Render(p.Headline) + "\n")
	b.WriteString(st.Tagline.Render(p.Tagline) + "\n\n")
	b.WriteString(st.Body.Width(w).Render(p.Bio) + "\n\n")

	acts := make([]string, 0, 3)
	for _, a := range content.Actions() {
		acts = append(acts, st.Key.Render("["+a.Key+"]")+" "+st.Action.Render(a.Label))
	}
	b.WriteString(strings.Join(textutil.Flow(acts, w, 3), "\n") + "\n")

	b.WriteString(st.Section.Render("Skills") + "\n")
	chips := make([]string, 0, len(content.Skills()))
	for _, s := range content.Skills() {
		chips = append(chips, st.Chip.Render(s))
	}
	b.WriteString(strings.Join(textutil.Flow(chips, w, 1), "\n"))
	return b.String()
}

// avatar renders the name banner in a frame whose border pulses.
func (h *HomeView) avatar(st Styles, w int) string {
	style := st.Avatar
	if h.Pulse {
		style = style.BorderForeground(st.Palette.Pulse)
	}
	text := h.banner
	// Border plus horizontal padding take 6 columns.
	if text == "" || lipgloss.Width(text)+6 > w {
		text = content.Profile().Name
	}
	return style.Render(text)
}
