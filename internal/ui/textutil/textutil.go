// Package textutil provides unicode-aware text utilities for TUI rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// TruncateEllipsis is the unicode ellipsis character used for truncation.
const TruncateEllipsis = "…"

// VisualWidth returns the number of terminal columns an unstyled string occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the visual width of a styled string,
// ignoring ANSI escape codes.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate truncates a string to fit within maxWidth visual columns.
// If truncation is needed, it appends the unicode ellipsis character (…).
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}

	availableWidth := maxWidth - VisualWidth(TruncateEllipsis)
	if availableWidth < 0 {
		return TruncateEllipsis
	}
	return runewidth.Truncate(s, availableWidth, "") + TruncateEllipsis
}

// PadRightVisual pads s with spaces to targetWidth visual columns.
// If s is already wider, it is truncated.
func PadRightVisual(s string, targetWidth int) string {
	currentWidth := VisualWidth(s)
	if currentWidth >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + strings.Repeat(" ", targetWidth-currentWidth)
}

// Flow lays out already-styled items left to right, starting a new row
// whenever the next item would exceed width. Items wider than width get a
// row of their own. Rows are joined with gap spaces between items.
func Flow(items []string, width, gap int) []string {
	var rows []string
	var row []string
	used := 0
	for _, it := range items {
		w := VisualWidthStyled(it)
		need := w
		if len(row) > 0 {
			need += gap
		}
		if len(row) > 0 && used+need > width {
			rows = append(rows, strings.Join(row, strings.Repeat(" ", gap)))
			row, used, need = nil, 0, w
		}
		row = append(row, it)
		used += need
	}
	if len(row) > 0 {
		rows = append(rows, strings.Join(row, strings.Repeat(" ", gap)))
	}
	return rows
}
