package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"portfolio/internal/content"
	"portfolio/internal/state"
)

// ResumeView shows the education and awards lists. It has no interaction.
type ResumeView struct {
	store *state.Store
	width int
}

var _ ScreenView = (*ResumeView)(nil)

// NewResumeView creates the resume screen.
func NewResumeView(store *state.Store) *ResumeView {
	return &ResumeView{store: store, width: defaultWidth}
}

func (r *ResumeView) Screen() state.Screen { return state.ScreenResume }
func (r *ResumeView) SetWidth(w int) { r.width = w }
func (r *ResumeView) HelpBindings() []key.Binding { return nil }
func (r *ResumeView) Init() tea.Cmd { return nil }
func (r *ResumeView) Update(tea.Msg) (View, tea.Cmd) { return r, nil }

// View implements View.
func (r *ResumeView) View() string {
	st := StylesFor(r.store.State().Theme)
	w := contentWidth(r.width)

	var b strings.Builder
	writeSection := func(title string, entries []content.Entry) {
		b.WriteString(st.Section.Render(title) + "\n")
		for _, e := range entries {
			b.WriteString("\n")
			b.WriteString(st.EntryTitle.Width(w).Render(e.Title) + "\n")
			b.WriteString(st.EntrySubtitle.Width(w).Render(e.Subtitle) + "\n")
		}
	}
	writeSection("Education", content.Education())
	b.WriteString("\n")
	writeSection("Awards & Honors", content.Awards())
	return strings.TrimRight(b.String(), "\n")
}
