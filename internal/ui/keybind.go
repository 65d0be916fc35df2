package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"portfolio/internal/state"
)

// KeybindRegistry maps key sequences to commands.
// Key sequences use spacemacs-style notation: "SPC" for space, "SPC t" for SPC then t.
// Single keys: "1", "tab", "ctrl+c", "?".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	screenFilter map[string][]state.Screen // nil/empty = applies to all screens
	short        map[string]bool           // shown in the footer
	order        []string                  // registration order, for stable help
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		screenFilter: make(map[string][]state.Screen),
		short:        make(map[string]bool),
	}
}

// BindWithDesc registers a key sequence on every screen, with a description
// for the help view. Overwrites any existing binding for the sequence.
func (r *KeybindRegistry) BindWithDesc(seq string, cmd tea.Cmd, desc string) {
	r.BindWithDescForScreens(seq, cmd, desc, nil)
}

// BindWithDescForScreens registers a key sequence limited to the given screens.
// If screens is empty, the binding applies everywhere.
func (r *KeybindRegistry) BindWithDescForScreens(seq string, cmd tea.Cmd, desc string, screens []state.Screen) {
	n := normalizeSeq(seq)
	if _, exists := r.bindings[n]; !exists {
		r.order = append(r.order, n)
	}
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(screens) > 0 {
		r.screenFilter[n] = screens
	} else {
		delete(r.screenFilter, n)
	}
}

// MarkShort includes seq in the one-line footer help.
func (r *KeybindRegistry) MarkShort(seqs ...string) {
	for _, s := range seqs {
		r.short[normalizeSeq(s)] = true
	}
}

// Lookup returns the command for a key sequence on screen, or nil if not bound there.
func (r *KeybindRegistry) Lookup(seq string, screen state.Screen) tea.Cmd {
	n := normalizeSeq(seq)
	if !r.appliesToScreen(n, screen) {
		return nil
	}
	return r.bindings[n]
}

// HasPrefix returns true if any binding starts with seq and a space (i.e. more keys follow).
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// firstLevelSubmenuLabel maps first-level keys that have sub-bindings to a generic display label.
var firstLevelSubmenuLabel = map[string]string{
	"s": "Screen",
}

// LeaderHints returns hints for SPC-prefixed bindings, filtered by screen.
// When currentSeq is empty, returns first-level hints (e.g. "q", "s", "t").
// When currentSeq is e.g. "SPC s", returns next-level hints ("h", "e", "r").
func (r *KeybindRegistry) LeaderHints(currentSeq string, screen state.Screen) map[string]string {
	out := make(map[string]string)
	prefix := "SPC "
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, cmd := range r.bindings {
		if cmd == nil || !strings.HasPrefix(seq, prefix) {
			continue
		}
		if !r.appliesToScreen(seq, screen) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		parts := strings.Fields(rest)
		k := rest
		if len(parts) > 0 {
			k = parts[0]
		}
		if r.HasPrefix(strings.TrimSuffix(prefix, " ") + " " + k) {
			if label, ok := firstLevelSubmenuLabel[k]; ok {
				out[k] = label
			} else {
				out[k] = k + "…"
			}
			continue
		}
		out[k] = r.describe(seq)
	}
	return out
}

// Bindings returns help bindings for screen in registration order.
// Leader sequences are excluded unless leader is true.
func (r *KeybindRegistry) Bindings(screen state.Screen, shortOnly, leader bool) []key.Binding {
	var out []key.Binding
	for _, seq := range r.order {
		if r.bindings[seq] == nil || !r.appliesToScreen(seq, screen) {
			continue
		}
		if shortOnly && !r.short[seq] {
			continue
		}
		if strings.HasPrefix(seq, "SPC") != leader {
			continue
		}
		out = append(out, key.NewBinding(
			key.WithKeys(seq),
			key.WithHelp(seq, r.describe(seq)),
		))
	}
	return out
}

func (r *KeybindRegistry) describe(seq string) string {
	if d, ok := r.descriptions[seq]; ok && d != "" {
		return d
	}
	return seq
}

// appliesToScreen returns true if the binding applies to the given screen.
func (r *KeybindRegistry) appliesToScreen(seq string, screen state.Screen) bool {
	screens, ok := r.screenFilter[seq]
	if !ok || len(screens) == 0 {
		return true
	}
	for _, s := range screens {
		if s == screen {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to our canonical format.
// "space" -> "SPC", "ctrl+c" -> "ctrl+c", "j" -> "j".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler manages leader key state and dispatches to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // " " (tea.KeyMsg.String() format)
	LeaderSeq     string   // "SPC" (our format)
	LeaderWaiting bool     // true when waiting for key after leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
// Bubble Tea reports space as " " (KeySpace), not "space".
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Handle processes a KeyMsg on the given screen. Returns (consumed, cmd).
// If consumed is true, the key was handled by the keybind system and should not be passed to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg, screen state.Screen) (consumed bool, cmd tea.Cmd) {
	s := msg.String()

	// Esc cancels leader mode
	if s == "esc" {
		if h.LeaderWaiting {
			h.reset()
			return true, nil
		}
		return false, nil
	}

	if s == h.LeaderKey && !h.LeaderWaiting {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, nil
	}

	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")

		if c := h.Registry.Lookup(seq, screen); c != nil {
			h.reset()
			return true, c
		}
		// No exact match; stay in leader mode if a longer binding exists
		if h.Registry.HasPrefix(seq) {
			return true, nil
		}
		h.reset()
		return true, nil
	}

	if c := h.Registry.Lookup(keyToSeqPart(s), screen); c != nil {
		return true, c
	}
	return false, nil
}

// CurrentSeq returns the buffered leader sequence, or "" outside leader mode.
func (h *KeyHandler) CurrentSeq() string {
	return strings.Join(h.Buffer, " ")
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}

// keyToSeqPart converts a tea key string to our sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyMap implements help.KeyMap over the registry for one screen.
// Local holds keys a screen view handles itself (e.g. card navigation).
type KeyMap struct {
	registry *KeybindRegistry
	screen   state.Screen
	Local    []key.Binding
}

var _ help.KeyMap = KeyMap{}

// NewKeyMap creates a KeyMap for the given registry and screen.
func NewKeyMap(registry *KeybindRegistry, screen state.Screen, local []key.Binding) KeyMap {
	return KeyMap{registry: registry, screen: screen, Local: local}
}

// ShortHelp returns the footer bindings.
func (km KeyMap) ShortHelp() []key.Binding {
	out := append([]key.Binding(nil), km.Local...)
	if km.registry != nil {
		out = append(out, km.registry.Bindings(km.screen, true, false)...)
	}
	return out
}

// FullHelp returns screen keys, shell keys and leader sequences as columns.
func (km KeyMap) FullHelp() [][]key.Binding {
	var cols [][]key.Binding
	if len(km.Local) > 0 {
		cols = append(cols, km.Local)
	}
	if km.registry == nil {
		return cols
	}
	cols = append(cols, chunk(km.registry.Bindings(km.screen, false, false), helpColumnRows)...)
	if leader := km.registry.Bindings(km.screen, false, true); len(leader) > 0 {
		cols = append(cols, leader)
	}
	return cols
}

// helpColumnRows caps the height of a full help column.
const helpColumnRows = 8

func chunk(bs []key.Binding, n int) [][]key.Binding {
	var out [][]key.Binding
	for len(bs) > n {
		out = append(out, bs[:n:n])
		bs = bs[n:]
	}
	if len(bs) > 0 {
		out = append(out, bs)
	}
	return out
}

// sortedKeys returns the keys of m in sorted order.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
