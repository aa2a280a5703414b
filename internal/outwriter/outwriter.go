// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"golang.org/x/term"
)

// GetTableTimeFormat picks a timestamp layout for table output based on the
// terminal width. Narrow terminals get clock time only; wide ones get the
// full RFC3339 timestamp.
func GetTableTimeFormat() string {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Conservative default for narrow terminals and CI
	}
	if width < 120 {
		return "15:04:05"
	}
	return "2006-01-02T15:04:05Z07:00"
}
