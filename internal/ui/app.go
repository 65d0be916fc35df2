package ui

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"portfolio/internal/content"
	"portfolio/internal/launch"
	"portfolio/internal/state"
	"portfolio/internal/ui/textutil"
)

const (
	defaultWidth    = 80
	defaultHeight   = 24
	maxContentWidth = 100
	// chromeHeight is the title bar, tab bar and footer.
	chromeHeight = 3
)

// contentWidth is the usable body width for a terminal of width w.
func contentWidth(w int) int {
	w -= 2
	if w > maxContentWidth {
		w = maxContentWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// AppModel is the root model: title bar, the active screen in a scrolling
// body, the tab bar and a one-line key hint footer.
type AppModel struct {
	Store      *state.Store
	Views      map[state.Screen]ScreenView
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Opener     launch.Opener
	Logger     *slog.Logger
	Ctx        context.Context

	viewport  viewport.Model
	help      help.Model
	width     int
	height    int
	tabRanges [][2]int // [start, end) columns of each tab in the tab bar
}

// Option configures an AppModel.
type Option func(*AppModel)

// WithStore uses an existing store instead of a fresh one.
func WithStore(s *state.Store) Option { return func(m *AppModel) { m.Store = s } }

// WithOpener sets how external actions are opened.
func WithOpener(o launch.Opener) Option { return func(m *AppModel) { m.Opener = o } }

// WithLogger sets the logger. The TUI owns the terminal, so this should
// not write to stdout or stderr.
func WithLogger(l *slog.Logger) Option { return func(m *AppModel) { m.Logger = l } }

// WithContext sets the context passed to dispatches and external actions.
func WithContext(ctx context.Context) Option { return func(m *AppModel) { m.Ctx = ctx } }

// NewAppModel creates the root application model at the initial state.
func NewAppModel(opts ...Option) *AppModel {
	m := &AppModel{
		KeyHandler: NewKeyHandler(defaultRegistry()),
		Opener:     launch.BrowserOpener{},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Ctx:        context.Background(),
		help:       help.New(),
	}
	for _, o := range opts {
		o(m)
	}
	if m.Store == nil {
		m.Store = state.NewStore(state.WithLogger(m.Logger))
	}
	m.Views = make(map[state.Screen]ScreenView)
	for _, v := range []ScreenView{NewHomeView(m.Store), NewExperienceView(m.Store), NewResumeView(m.Store)} {
		m.Views[v.Screen()] = v
	}
	m.viewport = viewport.New(defaultWidth, defaultHeight-chromeHeight)
	m.resize(defaultWidth, defaultHeight)
	m.Store.Subscribe(m.onStateChange)
	return m
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return pulseCmd()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case pulseMsg:
		a.Views[state.ScreenHome].Update(msg)
		if a.screen() == state.ScreenHome {
			a.refresh()
		}
		return a, pulseCmd()
	case DispatchMsg:
		a.apply(msg.Event)
		return a, nil
	case CycleScreenMsg:
		cur := a.screen()
		next := cur.Next()
		if msg.Delta < 0 {
			next = cur.Prev()
		}
		a.apply(state.SelectScreen{Target: next})
		return a, nil
	case OpenActionMsg:
		a.Logger.Info("open action", "action", msg.Action.Label, "target", msg.Action.Target)
		return a, launch.OpenCmd(a.Ctx, a.Opener, msg.Action)
	case launch.ResultMsg:
		if msg.Err != nil {
			a.Logger.Warn("open action failed", "action", msg.Action.Label, "target", msg.Action.Target, "error", msg.Err)
		}
		return a, nil
	case ToggleHelpMsg:
		if _, ok := a.Overlays.Pop(); !ok {
			a.Overlays.Push(Overlay{View: a.newHelpOverlay(), Dismiss: []string{"esc", "?", "q"}})
		}
		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	}
	return a, nil
}

func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Overlay swallows input until dismissed.
	if top, ok := a.Overlays.Peek(); ok {
		if msg.String() == "ctrl+c" {
			return tea.Quit
		}
		if top.IsDismissKey(msg.String()) {
			a.Overlays.Pop()
		}
		return nil
	}

	screen := a.screen()
	if consumed, cmd := a.KeyHandler.Handle(msg, screen); consumed {
		return cmd
	}

	view := a.currentView()
	_, cmd := view.Update(msg)
	if screen != state.ScreenExperience || isPageKey(msg) {
		var vcmd tea.Cmd
		a.viewport, vcmd = a.viewport.Update(msg)
		cmd = tea.Batch(cmd, vcmd)
	}
	a.refresh()
	if screen == state.ScreenExperience && !isPageKey(msg) {
		a.scrollToCursor()
	}
	return cmd
}

func isPageKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "pgup", "pgdown", "ctrl+u", "ctrl+d", "b", "f":
		return true
	}
	return false
}

func (a *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.Overlays.Len() > 0 {
		return nil
	}
	if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		return cmd
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	bodyTop := 1
	tabRow := bodyTop + a.viewport.Height
	switch {
	case msg.Y == tabRow:
		for i, r := range a.tabRanges {
			if msg.X >= r[0] && msg.X < r[1] {
				return selectScreenCmd(state.Screens()[i])
			}
		}
	case msg.Y >= bodyTop && msg.Y < tabRow && a.screen() == state.ScreenExperience:
		ev := a.Views[state.ScreenExperience].(*ExperienceView)
		if i, ok := ev.CardAt(msg.Y - bodyTop + a.viewport.YOffset); ok {
			return ev.ToggleAt(i)
		}
	}
	return nil
}

// apply dispatches ev through the store. The body is re-rendered by
// onStateChange.
func (a *AppModel) apply(ev state.Event) {
	next := a.Store.Dispatch(a.Ctx, ev)
	if _, ok := ev.(state.ToggleExpansion); ok && next.Screen == state.ScreenExperience {
		a.scrollToCursor()
	}
}

// onStateChange runs after every dispatch on the store, whoever sent it.
func (a *AppModel) onStateChange(prev, next state.AppState) {
	if next.Screen != prev.Screen {
		a.viewport.GotoTop()
	}
	a.refresh()
}

func (a *AppModel) resize(w, h int) {
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	a.width, a.height = w, h
	a.viewport.Width = w
	a.viewport.Height = max(h-chromeHeight, 1)
	a.help.Width = w
	for _, v := range a.Views {
		v.SetWidth(w)
	}
	a.refresh()
}

// refresh re-renders the active screen into the viewport.
func (a *AppModel) refresh() {
	a.viewport.SetContent(a.currentView().View())
}

// scrollToCursor keeps the selected experience card in view.
func (a *AppModel) scrollToCursor() {
	ev, ok := a.Views[state.ScreenExperience].(*ExperienceView)
	if !ok {
		return
	}
	top, bottom := ev.CursorRows()
	switch {
	case top < a.viewport.YOffset:
		a.viewport.SetYOffset(top)
	case bottom >= a.viewport.YOffset+a.viewport.Height:
		off := bottom - a.viewport.Height + 1
		if off > top {
			off = top
		}
		a.viewport.SetYOffset(off)
	}
}

func (a *AppModel) screen() state.Screen {
	return a.Store.State().Screen
}

func (a *AppModel) currentView() ScreenView {
	if v, ok := a.Views[a.screen()]; ok {
		return v
	}
	return a.Views[state.ScreenHome]
}

func (a *AppModel) keyMap() KeyMap {
	return NewKeyMap(a.KeyHandler.Registry, a.screen(), a.currentView().HelpBindings())
}

func (a *AppModel) newHelpOverlay() *HelpOverlay {
	return &HelpOverlay{KeyMap: a.keyMap(), Styles: StylesFor(a.Store.State().Theme)}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	s := a.Store.State()
	st := StylesFor(s.Theme)

	body := a.viewport.View()
	if top, ok := a.Overlays.Peek(); ok {
		box := lipgloss.NewStyle().MaxWidth(a.width).MaxHeight(a.viewport.Height).Render(top.View.View())
		body = lipgloss.Place(a.width, a.viewport.Height, lipgloss.Center, lipgloss.Center, box)
	}
	if hint := RenderKeybindHelp(a.KeyHandler, s.Screen, st); hint != "" {
		body = overlayBottom(body, hint, a.viewport.Height)
	}

	a.help.Styles.ShortKey = st.Key
	a.help.Styles.ShortDesc = st.Hint
	a.help.Styles.ShortSeparator = st.Hint
	footer := a.help.ShortHelpView(a.keyMap().ShortHelp())

	return strings.Join([]string{
		a.renderTitleBar(st, s.Theme),
		body,
		a.renderTabBar(st, s.Screen),
		footer,
	}, "\n")
}

// renderTitleBar shows the name and the theme toggle. The toggle names the
// theme it switches to.
func (a *AppModel) renderTitleBar(st Styles, theme state.Theme) string {
	toggle := "[t] ☾ Dark"
	if theme.Dark() {
		toggle = "[t] ☀ Light"
	}
	inner := a.width - 2
	name := textutil.PadRightVisual(content.Profile().Name, max(inner-textutil.VisualWidth(toggle)-1, 1))
	return bar(st.TitleBar, a.width).Render(st.TitleName.Render(name) + " " + toggle)
}

// renderTabBar draws one tab per screen and records each tab's columns for
// mouse hits. Tabs shrink to their number when the names do not fit.
func (a *AppModel) renderTabBar(st Styles, active state.Screen) string {
	tabs, ranges := tabLabels(st, active, true)
	if ranges[len(ranges)-1][1] > a.width {
		tabs, ranges = tabLabels(st, active, false)
	}
	a.tabRanges = ranges
	return bar(st.TabBar, a.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func tabLabels(st Styles, active state.Screen, named bool) ([]string, [][2]int) {
	var tabs []string
	var ranges [][2]int
	x := 0
	for i, s := range state.Screens() {
		style := st.Tab
		if s == active {
			style = st.TabActive
		}
		text := string(rune('1' + i))
		if named {
			text += " " + s.String()
		}
		label := style.Render(text)
		w := lipgloss.Width(label)
		ranges = append(ranges, [2]int{x, x + w})
		x += w
		tabs = append(tabs, label)
	}
	return tabs, ranges
}

// bar sizes a one-line bar to exactly width columns.
func bar(style lipgloss.Style, width int) lipgloss.Style {
	return style.Width(width).MaxWidth(width).MaxHeight(1)
}

// overlayBottom replaces the last lines of body with box, keeping height lines.
// A box taller than height keeps only its first height lines.
func overlayBottom(body, box string, height int) string {
	lines := strings.Split(body, "\n")
	boxLines := strings.Split(box, "\n")
	if len(boxLines) > height {
		boxLines = boxLines[:height]
	}
	keep := max(height-len(boxLines), 0)
	if keep > len(lines) {
		keep = len(lines)
	}
	return strings.Join(append(lines[:keep:keep], boxLines...), "\n")
}
