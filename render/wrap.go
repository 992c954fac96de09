package render

import "strings"

// Wrap greedily fills lines of at most width cells, breaking only at runs of
// ASCII whitespace. Tabs, newlines and other ASCII whitespace each become a
// single space first. Whitespace inside a line is kept as is; the run at a
// line break is dropped. A word wider than width is kept whole on its own
// line. Blank input yields a single empty line so every value occupies at
// least one row.
func Wrap(s string, width int) []string {
	chunks := splitChunks(s)

	var lines []string
	for i := 0; i < len(chunks); {
		// Continuation lines never start with whitespace.
		if len(lines) > 0 && isSpaceChunk(chunks[i]) {
			i++
			continue
		}

		var cur []string
		curW := 0
		for i < len(chunks) {
			w := VisibleWidth(chunks[i])
			if curW+w > width {
				break
			}
			cur = append(cur, chunks[i])
			curW += w
			i++
		}
		if len(cur) == 0 && i < len(chunks) {
			cur = append(cur, chunks[i])
			i++
		}
		if n := len(cur); n > 0 && isSpaceChunk(cur[n-1]) {
			cur = cur[:n-1]
		}
		if len(cur) > 0 {
			lines = append(lines, strings.Join(cur, ""))
		}
	}
	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// isASCIISpace matches the break characters: space, \t, \n, \v, \f, \r.
func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isSpaceChunk(c string) bool {
	return c != "" && c[0] == ' '
}

// splitChunks splits s into alternating runs of spaces and non-spaces after
// mapping every ASCII whitespace byte to a space.
func splitChunks(s string) []string {
	var (
		chunks []string
		cur    strings.Builder
		inWS   bool
	)
	for i := 0; i < len(s); i++ {
		b := s[i]
		ws := isASCIISpace(b)
		if ws {
			b = ' '
		}
		if cur.Len() > 0 && ws != inWS {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
		inWS = ws
		cur.WriteByte(b)
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}
