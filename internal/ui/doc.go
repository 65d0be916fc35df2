// Package ui is the terminal shell for the portfolio, built on Bubble Tea.
//
// Core pieces:
//   - AppModel: title bar, scrolling body, tab bar; routes input
//   - ScreenView: Home, Experience and Resume bodies, rendered from state.Store
//   - KeybindRegistry/KeyHandler: single keys plus SPC leader sequences
//   - OverlayStack: the help overlay
//
// Views never mutate state directly. They return a DispatchMsg and the shell
// applies it through state.Store.Dispatch.
package ui
