// Package sysinfo gathers local system facts into an ordered report.
// Every probe is best-effort: a failure is logged and shown as "N/A",
// it never aborts collection.
package sysinfo

import (
	"errors"
	"strings"
)

// ANSI color codes for terminal output formatting
const (
	ColorReset = "\033[0m"
	ColorGreen = "\033[0;32m"
)

// NotAvailable is shown in place of any value a probe could not produce.
const NotAvailable = "N/A"

// ErrNoData is returned by probes that ran cleanly but found nothing.
var ErrNoData = errors.New("no data")

// Entry is one labeled line of the report. Scalar values hold a single
// element; list values (e.g. disks) hold one element per item.
type Entry struct {
	Label  string   `yaml:"label"`
	Values []string `yaml:"value,flow"`
}

// Value joins a list value with "; " for display.
func (e Entry) Value() string {
	return strings.Join(e.Values, "; ")
}

// Report is the collected system information. Order is display order.
type Report []Entry

// Labels returns the labels in report order.
func (r Report) Labels() []string {
	labels := make([]string, len(r))
	for i, e := range r {
		labels[i] = e.Label
	}
	return labels
}

// Lookup returns the entry with the given label.
func (r Report) Lookup(label string) (Entry, bool) {
	for _, e := range r {
		if e.Label == label {
			return e, true
		}
	}
	return Entry{}, false
}

// Result is the outcome of a single probe. It is collapsed to
// NotAvailable only when the report is assembled.
type Result struct {
	Values []string
	Err    error
}

// Value builds a successful scalar result, treating blank strings as missing.
func Value(s string) Result {
	s = strings.TrimSpace(s)
	if s == "" {
		return Result{Err: ErrNoData}
	}
	return Result{Values: []string{s}}
}

// List builds a successful list result; an empty list is missing data.
func List(items []string) Result {
	if len(items) == 0 {
		return Result{Err: ErrNoData}
	}
	return Result{Values: items}
}

// Fail builds a failed result.
func Fail(err error) Result {
	return Result{Err: err}
}

// OK reports whether the probe produced a value.
func (r Result) OK() bool {
	return r.Err == nil && len(r.Values) > 0
}

// entry collapses the result into a display entry.
func (r Result) entry(label string) Entry {
	if !r.OK() {
		return Entry{Label: label, Values: []string{NotAvailable}}
	}
	return Entry{Label: label, Values: r.Values}
}
