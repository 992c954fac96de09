package render

import (
	"fmt"
	"strings"

	"gubamifetch/sysinfo"
)

// paletteSize is the number of indexed colors shown: 8 standard, 8 bright.
const paletteSize = 16

// Swatch returns a line of two-cell blocks, one per palette index 0-15.
// Without color the blocks are plain spaces.
func Swatch(color bool) string {
	blocks := make([]string, paletteSize)
	for i := range blocks {
		if color {
			blocks[i] = fmt.Sprintf("\033[48;5;%dm  %s", i, sysinfo.ColorReset)
		} else {
			blocks[i] = "  "
		}
	}
	return "Terminal Colors: " + strings.Join(blocks, " ")
}
