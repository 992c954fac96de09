package config

import (
	"io"
	"strconv"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWidth is used when the terminal width can't be determined.
const DefaultWidth = 80

// ResolveColor decides whether to emit ANSI colors. In auto mode colors
// are enabled only when the output's detected profile supports them; the
// profile is Ascii for non-TTYs, TERM=dumb and NO_COLOR.
func ResolveColor(mode ColorMode, profile termenv.Profile) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return profile != termenv.Ascii
	}
}

// DetectProfile returns the color profile of w, honoring the environment.
func DetectProfile(w io.Writer) termenv.Profile {
	return termenv.NewOutput(w).EnvColorProfile()
}

// TerminalWidth resolves the render width.
//
// Parameters:
//   - override: The --width flag; used when positive
//   - fd: File descriptor of the output terminal
//   - getenv: Environment lookup, consulted for $COLUMNS
//
// Returns:
//   - The first positive width among override, the terminal size on fd,
//     $COLUMNS and DefaultWidth
func TerminalWidth(override, fd int, getenv func(string) string) int {
	if override > 0 {
		return override
	}
	if w, _, err := term.GetSize(fd); err == nil && w > 0 {
		return w
	}
	if n, err := strconv.Atoi(getenv("COLUMNS")); err == nil && n > 0 {
		return n
	}
	return DefaultWidth
}
