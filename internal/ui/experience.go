package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"portfolio/internal/content"
	"portfolio/internal/state"
)

// ExperienceView lists one card per experience record. The cursor picks
// which card enter/x toggles; expansion itself lives in the store.
type ExperienceView struct {
	store   *state.Store
	Records []content.Experience
	Cursor  int
	width   int

	// cardRows holds [first, last] body line of each card from the last render.
	cardRows [][2]int
}

var _ ScreenView = (*ExperienceView)(nil)

var experienceKeys = struct {
	Up, Down, Top, Bottom, Toggle key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "prev card")),
	Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next card")),
	Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "first card")),
	Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "last card")),
	Toggle: key.NewBinding(key.WithKeys("enter", "x"), key.WithHelp("enter", "show more/less")),
}

// NewExperienceView creates the experience screen over the static records.
func NewExperienceView(store *state.Store) *ExperienceView {
	return &ExperienceView{
		store:   store,
		Records: content.Experiences(),
		width:   defaultWidth,
	}
}

// Screen implements ScreenView.
func (v *ExperienceView) Screen() state.Screen { return state.ScreenExperience }

// SetWidth implements ScreenView.
func (v *ExperienceView) SetWidth(w int) { v.width = w }

// HelpBindings implements ScreenView.
func (v *ExperienceView) HelpBindings() []key.Binding {
	return []key.Binding{experienceKeys.Down, experienceKeys.Up, experienceKeys.Toggle}
}

// Init implements View.
func (v *ExperienceView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *ExperienceView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(v.Records) == 0 {
		return v, nil
	}
	switch {
	case key.Matches(km, experienceKeys.Down):
		if v.Cursor < len(v.Records)-1 {
			v.Cursor++
		}
	case key.Matches(km, experienceKeys.Up):
		if v.Cursor > 0 {
			v.Cursor--
		}
	case key.Matches(km, experienceKeys.Top):
		v.Cursor = 0
	case key.Matches(km, experienceKeys.Bottom):
		v.Cursor = len(v.Records) - 1
	case key.Matches(km, experienceKeys.Toggle):
		return v, v.ToggleAt(v.Cursor)
	}
	return v, nil
}

// ToggleAt moves the cursor to card i and returns the command that toggles it.
func (v *ExperienceView) ToggleAt(i int) tea.Cmd {
	if i < 0 || i >= len(v.Records) {
		return nil
	}
	v.Cursor = i
	return dispatchCmd(state.ToggleExpansion{ID: v.Records[i].ID})
}

// CardAt returns the index of the card drawn on body line, if any.
func (v *ExperienceView) CardAt(line int) (int, bool) {
	for i, r := range v.cardRows {
		if line >= r[0] && line <= r[1] {
			return i, true
		}
	}
	return 0, false
}

// CursorRows returns the first and last body line of the card under the cursor.
func (v *ExperienceView) CursorRows() (int, int) {
	if v.Cursor < 0 || v.Cursor >= len(v.cardRows) {
		return 0, 0
	}
	r := v.cardRows[v.Cursor]
	return r[0], r[1]
}

// View implements View.
func (v *ExperienceView) View() string {
	s := v.store.State()
	st := StylesFor(s.Theme)
	w := contentWidth(v.width)

	v.cardRows = v.cardRows[:0]
	var blocks []string
	line := 0
	for i, c := range state.Cards(s, v.Records) {
		card := v.renderCard(st, c, i == v.Cursor, w)
		h := lipgloss.Height(card)
		v.cardRows = append(v.cardRows, [2]int{line, line + h - 1})
		line += h
		blocks = append(blocks, card)
	}
	return strings.Join(blocks, "\n")
}

func (v *ExperienceView) renderCard(st Styles, c state.Card, selected bool, w int) string {
	style := st.Card
	if selected {
		style = st.CardSelected
	}
	// Border and padding take 4 columns.
	inner := w - 4
	if inner < 10 {
		inner = 10
	}
	e := c.Experience

	lines := []string{
		st.CardTitle.Width(inner).Render(e.Title),
		st.CardMeta.Width(inner).Render(e.Company + " • " + e.Duration),
		"",
	}
	for _, r := range c.Visible {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			"• ",
			st.Body.Width(inner-2).Render(r),
		))
	}
	lines = append(lines, "", st.Toggle.Render(c.Label))
	return style.Width(w - 2).Render(strings.Join(lines, "\n"))
}
