// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatUsage renders a used/total pair with IEC units.
//
// Example: FormatUsage(Usage{Used: 1536 << 20, Total: 8 << 30}) returns
// "1.5 GiB / 8.0 GiB"
func FormatUsage(u Usage) string {
	return humanize.IBytes(u.Used) + " / " + humanize.IBytes(u.Total)
}

// FormatUptime renders a duration the way `uptime -p` does.
//
// Example: FormatUptime(26*time.Hour + 5*time.Minute) returns
// "up 1 day, 2 hours, 5 minutes"
func FormatUptime(uptime time.Duration) string {
	days := int(uptime.Hours() / 24)
	hours := int(uptime.Hours()) % 24
	mins := int(uptime.Minutes()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d day%s", days, plural(days)))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour%s", hours, plural(hours)))
	}
	if mins > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d minute%s", mins, plural(mins)))
	}

	return "up " + strings.Join(parts, ", ")
}

// plural returns "s" if count is not 1, empty string otherwise.
func plural(count int) string {
	if count != 1 {
		return "s"
	}
	return ""
}

// unquote strips the single quotes gsettings puts around string values.
func unquote(s string) string {
	return strings.Trim(strings.TrimSpace(s), "'")
}
