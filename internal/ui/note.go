package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Box-drawing characters for notes
const (
	boxTopLeft     = "╭"
	boxTopRight    = "╮"
	boxBottomLeft  = "╰"
	boxBottomRight = "╯"
	boxHorizontal  = "─"
	boxVertical    = "│"
)

// Note writes a boxed message with an optional title to w
func Note(w io.Writer, message string, title string) {
	lines := strings.Split(WrapNoteMessage(message, 80), "\n")

	maxWidth := VisibleWidth(title) + 2
	for _, line := range lines {
		if lw := VisibleWidth(line); lw > maxWidth {
			maxWidth = lw
		}
	}
	boxWidth := maxWidth + 2

	if title != "" {
		styledTitle := title
		if IsRich() {
			styledTitle = Heading("%s", title)
		}
		fmt.Fprintf(w, "%s%s %s %s%s\n",
			Muted(boxTopLeft),
			Muted(boxHorizontal),
			styledTitle,
			Muted("%s", strings.Repeat(boxHorizontal, boxWidth-3-VisibleWidth(title))),
			Muted(boxTopRight))
	} else {
		fmt.Fprintln(w, Muted("%s", boxTopLeft+strings.Repeat(boxHorizontal, boxWidth)+boxTopRight))
	}

	for _, line := range lines {
		fmt.Fprintf(w, "%s %s %s\n",
			Muted(boxVertical),
			PadRight(line, boxWidth-2),
			Muted(boxVertical))
	}

	fmt.Fprintln(w, Muted("%s", boxBottomLeft+strings.Repeat(boxHorizontal, boxWidth)+boxBottomRight))
}

// WrapNoteMessage wraps text to fit within terminal width
func WrapNoteMessage(message string, maxWidth int) string {
	columns := 80
	if term, ok := os.LookupEnv("COLUMNS"); ok {
		if n := parseIntOr(term, 80); n > 0 {
			columns = n
		}
	}

	width := columns - 10
	if width > maxWidth {
		width = maxWidth
	}
	if width < 40 {
		width = 40
	}

	var outputLines []string
	for _, line := range strings.Split(message, "\n") {
		outputLines = append(outputLines, wrapLine(line, width)...)
	}
	return strings.Join(outputLines, "\n")
}

// wrapLine wraps a single line to width, keeping its leading indent
func wrapLine(line string, maxWidth int) []string {
	if strings.TrimSpace(line) == "" {
		return []string{line}
	}
	indent := line[:len(line)-len(strings.TrimLeft(line, " "))]

	var lines []string
	current := ""
	for _, word := range strings.Fields(line) {
		candidate := current
		if current != "" {
			candidate += " "
		}
		candidate += word

		if VisibleWidth(indent+candidate) <= maxWidth {
			current = candidate
		} else {
			if current != "" {
				lines = append(lines, indent+current)
			}
			current = word
		}
	}
	if current != "" {
		lines = append(lines, indent+current)
	}
	return lines
}

func parseIntOr(s string, def int) int {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return def
	}
	return n
}

// ErrorNote writes an error-styled note
func ErrorNote(w io.Writer, message string) {
	Note(w, message, "✗ Error")
}
