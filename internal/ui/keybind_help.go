package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"portfolio/internal/state"
)

// RenderKeybindHelp produces the transient hint box shown after SPC.
// When the handler has a partial sequence (e.g. "SPC s"), it shows the next level.
func RenderKeybindHelp(h *KeyHandler, screen state.Screen, st Styles) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	currentSeq := h.CurrentSeq()
	hints := h.Registry.LeaderHints(currentSeq, screen)
	if len(hints) == 0 {
		return ""
	}

	bindings := make([]key.Binding, 0, len(hints)+1)
	for _, k := range sortedKeys(hints) {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	m := help.New()
	m.Styles.ShortKey = st.Key
	m.Styles.ShortDesc = st.Hint
	m.Styles.ShortSeparator = st.Hint

	return st.LeaderBox.Render(st.Hint.Render(currentSeq) + " " + m.ShortHelpView(bindings))
}
