// Package render lays out a logo and a system report side by side for a
// terminal of a given width.
package render

import (
	"bufio"
	"io"
	"strings"

	"gubamifetch/sysinfo"
)

const (
	// DefaultGap is the number of spaces between the logo and the labels.
	DefaultGap = 3
	// MinValueWidth is the floor for the value column. Lines overflow
	// terminals too narrow to fit it.
	MinValueWidth = 20
)

// Options controls a render.
type Options struct {
	// Width is the terminal width in columns.
	Width int
	Gap   int
	// Color wraps labels in green.
	Color bool
}

// DefaultOptions returns colored options with the default gap.
func DefaultOptions(width int) Options {
	return Options{Width: width, Gap: DefaultGap, Color: true}
}

// Row is one physical terminal line. Label is empty on continuation rows
// of a wrapped value; Info is false on logo-only rows.
type Row struct {
	Left  string
	Label string
	Value string
	Info  bool
}

// Layout is a computed combined view.
type Layout struct {
	LogoWidth  int
	KeyWidth   int
	ValueWidth int
	Gap        int
	Rows       []Row

	color bool
}

// fragment is one wrapped piece of a value with the label it shows, if any.
type fragment struct {
	label string
	text  string
}

// NewLayout computes the rows for report beside logo.
//
// Parameters:
//   - report: Entries in display order
//   - logo: Logo lines, one per row
//   - opts: Terminal width, gap and color settings
//
// Returns:
//   - A Layout with max(len(logo), wrapped value lines) rows
//
// The value column is floored at MinValueWidth, so narrow terminals get
// lines wider than opts.Width rather than an error.
func NewLayout(report sysinfo.Report, logo []string, opts Options) Layout {
	l := Layout{Gap: opts.Gap, color: opts.Color}
	for _, line := range logo {
		l.LogoWidth = max(l.LogoWidth, VisibleWidth(line))
	}
	for _, e := range report {
		l.KeyWidth = max(l.KeyWidth, VisibleWidth(e.Label))
	}
	l.KeyWidth++
	l.ValueWidth = max(opts.Width-l.LogoWidth-l.Gap-l.KeyWidth, MinValueWidth)

	var frags []fragment
	for _, e := range report {
		for i, text := range Wrap(e.Value(), l.ValueWidth) {
			f := fragment{text: text}
			if i == 0 {
				f.label = e.Label
			}
			frags = append(frags, f)
		}
	}

	n := max(len(logo), len(frags))
	l.Rows = make([]Row, n)
	for i := range l.Rows {
		r := &l.Rows[i]
		if i < len(logo) {
			r.Left = logo[i]
		} else {
			r.Left = strings.Repeat(" ", l.LogoWidth)
		}
		if i < len(frags) {
			r.Label, r.Value, r.Info = frags[i].label, frags[i].text, true
		}
	}
	return l
}

// Lines renders every row to a string.
func (l Layout) Lines() []string {
	lines := make([]string, len(l.Rows))
	for i, r := range l.Rows {
		lines[i] = l.line(r)
	}
	return lines
}

func (l Layout) line(r Row) string {
	if !r.Info {
		return r.Left
	}
	// Blank logo rows drop the label gutter and indent the value under it.
	if isBlank(r.Left) {
		return strings.Repeat(" ", l.LogoWidth+l.Gap+l.KeyWidth) + r.Value
	}
	label := PadRight(r.Label, l.KeyWidth)
	if l.color {
		label = sysinfo.ColorGreen + label + sysinfo.ColorReset
	}
	return r.Left + strings.Repeat(" ", l.Gap) + label + r.Value
}

// Lines lays out report beside logo and returns the output lines.
func Lines(report sysinfo.Report, logo []string, opts Options) []string {
	return NewLayout(report, logo, opts).Lines()
}

// Write renders the combined view to w, one line per row.
//
// Parameters:
//   - w: Destination, usually os.Stdout
//   - report, logo, opts: As for NewLayout
//
// Returns:
//   - The first write error, if any
func Write(w io.Writer, report sysinfo.Report, logo []string, opts Options) error {
	bw := bufio.NewWriter(w)
	for _, line := range Lines(report, logo, opts) {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
