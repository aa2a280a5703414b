package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/sailhq/windward/schema"
)

// Color variables for console output.
var (
	PortColor      = color.New(color.FgRed, color.Bold)   // portColor matches the port navigation light.
	StarboardColor = color.New(color.FgGreen, color.Bold) // starboardColor matches the starboard navigation light.
	TurnColor      = color.New(color.FgYellow)            // turnColor marks turning segments.
	UnknownColor   = color.New(color.FgCyan)              // unknownColor represents missing wind data.
)

// GetPlainTackLabel returns a plain text label for a tack. This is the core
// logic used for CSV, JSON, and table printing.
func GetPlainTackLabel(tack schema.Tack) string {
	if tack == "" {
		return string(schema.UnknownTack)
	}
	return string(tack)
}

// GetColorTackLabel returns a colored text label for console output (table).
// It uses GetPlainTackLabel to determine the string, and then applies the
// appropriate color.
func GetColorTackLabel(tack schema.Tack) string {
	text := GetPlainTackLabel(tack)

	switch tack {
	case schema.PortTack:
		return PortColor.Sprint(text)
	case schema.StarboardTack:
		return StarboardColor.Sprint(text)
	case schema.MixedTack:
		return TurnColor.Sprint(text)
	default: // "unknown"
		return UnknownColor.Sprint(text)
	}
}

// GetColorKindLabel returns a colored text label for a segment kind.
func GetColorKindLabel(kind schema.SegmentKind) string {
	if kind == schema.TurnSegment {
		return TurnColor.Sprint(string(kind))
	}
	return string(kind)
}

// ApplyColorPreference toggles colored output globally.
func ApplyColorPreference(useColors bool) {
	color.NoColor = !useColors
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
