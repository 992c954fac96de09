// Package ascii provides the logo art printed beside the system report.
// Logos are plain text; only report labels are colored.
package ascii

// GetLogo returns the default braille logo.
//
// Returns:
//   - A 9-line logo; each call returns a fresh copy
func GetLogo() []string {
	return clone(defaultLogo)
}

// GetCompactLogo returns a smaller logo for narrow terminals.
func GetCompactLogo() []string {
	return clone(compactLogo)
}

func clone(lines []string) []string {
	return append([]string(nil), lines...)
}

var defaultLogo = []string{
	"⠀⠀⠀⠀⠀⠀⠀⢀⣀⡀⠀⠀⠀⠀⢀⠀⠀⠀⠀⠀⠀⠀⠀⠀",
	"⠀⠀⠀⠀⠀⢀⣶⠿⠉⠉⠑⠲⠾⠟⡏⢩⠻⣦⣀⠀⠀⠀⠀⠀",
	"⠀⠀⠀⢀⣤⡞⠉⠀⠀⡀⠀⠀⠀⠀⠀⠀⠀⠃⠙⢿⣄⠀⠀⠀",
	"⠀⠀⢀⠞⠉⠂⠀⠀⡀⢰⣀⣰⣰⣄⣆⠀⠀⠀⠀⠀⠻⣄⡀⠀",
	"⠐⠺⡧⣧⣵⡤⡬⠶⠾⠿⠭⠭⠬⠭⠿⠿⠶⠤⠤⣶⢾⣾⡟⠒",
	"⠀⠀⠹⡏⣟⡌⠀⠀⠀⠀⠀⠀⡀⠀⠀⠀⠄⠀⠀⢠⣏⡜⠁⠀",
	"⠀⠀⠀⠈⠻⣧⢀⠀⠀⠀⠀⠀⠃⠀⠀⠀⠀⠀⢠⣧⠎⠀⠀⠀",
	"⠀⠀⠀⠀⠀⠀⠙⠓⢬⣄⣀⣀⣆⣀⣤⣠⣴⠶⠛⠁⠀⠀⠀⠀",
	"⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠉⠙⠛⠋⠉⠁⠀⠀⠀⠀⠀⠀⠀",
}

var compactLogo = []string{
	"   .----.   ",
	"  /  ..  \\  ",
	" |  (__)  | ",
	"==========  ",
	"  \\      /  ",
	"   '----'   ",
}
