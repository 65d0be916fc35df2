package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"portfolio/internal/content"
	"portfolio/internal/state"
)

// PulseInterval is half the avatar pulse period.
const PulseInterval = time.Second

// dispatchCmd returns a command that emits ev as a DispatchMsg.
func dispatchCmd(ev state.Event) tea.Cmd {
	return func() tea.Msg { return DispatchMsg{Event: ev} }
}

func selectScreenCmd(s state.Screen) tea.Cmd {
	return dispatchCmd(state.SelectScreen{Target: s})
}

func cycleScreenCmd(delta int) tea.Cmd {
	return func() tea.Msg { return CycleScreenMsg{Delta: delta} }
}

func openActionCmd(a content.Action) tea.Cmd {
	return func() tea.Msg { return OpenActionMsg{Action: a} }
}

func toggleHelpCmd() tea.Msg { return ToggleHelpMsg{} }

// pulseCmd schedules the next avatar pulse frame.
func pulseCmd() tea.Cmd {
	return tea.Tick(PulseInterval, func(t time.Time) tea.Msg { return pulseMsg(t) })
}

// defaultRegistry returns the shell's key bindings.
func defaultRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("1", selectScreenCmd(state.ScreenHome), "Home")
	reg.BindWithDesc("2", selectScreenCmd(state.ScreenExperience), "Experience")
	reg.BindWithDesc("3", selectScreenCmd(state.ScreenResume), "Resume")
	reg.BindWithDesc("h", selectScreenCmd(state.ScreenHome), "Home")
	reg.BindWithDesc("e", selectScreenCmd(state.ScreenExperience), "Experience")
	reg.BindWithDesc("r", selectScreenCmd(state.ScreenResume), "Resume")
	reg.BindWithDesc("tab", cycleScreenCmd(1), "next screen")
	reg.BindWithDesc("shift+tab", cycleScreenCmd(-1), "prev screen")
	reg.BindWithDesc("t", dispatchCmd(state.ToggleTheme{}), "toggle theme")
	reg.BindWithDesc("?", toggleHelpCmd, "help")
	reg.BindWithDesc("q", tea.Quit, "quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")

	home := []state.Screen{state.ScreenHome}
	for _, a := range content.Actions() {
		reg.BindWithDescForScreens(a.Key, openActionCmd(a), a.Label, home)
	}

	reg.BindWithDesc("SPC s h", selectScreenCmd(state.ScreenHome), "Home")
	reg.BindWithDesc("SPC s e", selectScreenCmd(state.ScreenExperience), "Experience")
	reg.BindWithDesc("SPC s r", selectScreenCmd(state.ScreenResume), "Resume")
	reg.BindWithDesc("SPC t", dispatchCmd(state.ToggleTheme{}), "Toggle theme")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")

	reg.MarkShort("tab", "t", "?", "q", "m", "l", "g")
	return reg
}
