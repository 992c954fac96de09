package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// VisibleWidth returns the number of terminal cells s occupies, ignoring
// ANSI escape sequences.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// PadRight pads s with spaces to reach a minimum visible width.
//
// Example: PadRight("Hi", 5) returns "Hi   "
func PadRight(s string, width int) string {
	w := VisibleWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// isBlank reports whether s has no visible content.
func isBlank(s string) bool {
	return strings.TrimSpace(ansi.Strip(s)) == ""
}
