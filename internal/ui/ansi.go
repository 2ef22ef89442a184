package ui

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// ANSI escape code patterns
var (
	// SGR (Select Graphic Rendition) codes: ESC[...m
	ansiSGRPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

	// OSC-8 hyperlink codes: ESC]8;;...ESC\ or ESC]8;;ESC\
	osc8Pattern = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\|\x1b\]8;;\x1b\\`)
)

// StripAnsi removes all ANSI escape codes from a string
func StripAnsi(input string) string {
	result := osc8Pattern.ReplaceAllString(input, "")
	return ansiSGRPattern.ReplaceAllString(result, "")
}

// VisibleWidth returns the display width of a string, ignoring ANSI codes.
// Counts runes, so box and check glyphs are one column each.
func VisibleWidth(input string) int {
	return utf8.RuneCountInString(StripAnsi(input))
}

// PadRight pads a string with spaces to a minimum visible width
func PadRight(input string, width int) string {
	visible := VisibleWidth(input)
	if visible >= width {
		return input
	}
	return input + strings.Repeat(" ", width-visible)
}
