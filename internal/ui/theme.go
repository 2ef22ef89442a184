package ui

import (
	"os"
	"strings"

	"github.com/fatih/color"
)

// Theme provides styled color functions for consistent CLI output
// Respects NO_COLOR and FORCE_COLOR environment variables

var (
	// Check color support
	noColor    = os.Getenv("NO_COLOR") != ""
	forceColor = isForceColor()
)

func init() {
	if forceColor {
		color.NoColor = false
	} else if noColor {
		color.NoColor = true
	}
}

func isForceColor() bool {
	fc := strings.TrimSpace(os.Getenv("FORCE_COLOR"))
	return fc != "" && fc != "0"
}

// IsRich returns true if the terminal supports rich output (colors)
func IsRich() bool {
	return !color.NoColor
}

// SetRich turns styling on or off for every theme function
func SetRich(rich bool) {
	color.NoColor = !rich
}

// Heading returns bold accent text for section headers
func Heading(format string, a ...interface{}) string {
	return color.New(color.FgCyan, color.Bold).Sprintf(format, a...)
}

// Success returns success-styled text
func Success(format string, a ...interface{}) string {
	return color.New(color.FgGreen, color.Bold).Sprintf(format, a...)
}

// Warn returns warning-styled text
func Warn(format string, a ...interface{}) string {
	return color.New(color.FgYellow).Sprintf(format, a...)
}

// Error returns error-styled text
func Error(format string, a ...interface{}) string {
	return color.New(color.FgRed, color.Bold).Sprintf(format, a...)
}

// Muted returns secondary/hint text
func Muted(format string, a ...interface{}) string {
	return color.New(color.FgHiBlack).Sprintf(format, a...)
}

// Accent returns highlighted values such as the ratio
func Accent(format string, a ...interface{}) string {
	return color.New(color.FgMagenta, color.Bold).Sprintf(format, a...)
}

// Bold returns bold white text
func Bold(format string, a ...interface{}) string {
	return color.New(color.FgWhite, color.Bold).Sprintf(format, a...)
}

// Swatch renders a two-cell block filled with the given 24-bit color.
// Returns an empty string when styling is off.
func Swatch(r, g, b uint8) string {
	if !IsRich() {
		return ""
	}
	return color.BgRGB(int(r), int(g), int(b)).Sprint("  ")
}

// ForLevel picks a style for a summary level: pass, partial or fail
func ForLevel(pass, partial bool) func(string, ...interface{}) string {
	switch {
	case pass:
		return Success
	case partial:
		return Warn
	default:
		return Error
	}
}
