// Package report renders a contrast check result for people (Text) and for
// tools (JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"wcag-contrast/internal/color"
	"wcag-contrast/internal/ui"
	"wcag-contrast/internal/wcag"
)

const ruleWidth = 60

// Options controls text rendering
type Options struct {
	ASCII  bool // plain ASCII symbols instead of ✓ ✗ • ≥
	Swatch bool // append a true-color block after each color (rich terminals only)
}

type symbols struct {
	pass, fail, bullet, gte string
}

var (
	unicodeSymbols = symbols{pass: "✓ PASS", fail: "✗ FAIL", bullet: "•", gte: "≥"}
	asciiSymbols   = symbols{pass: "+ PASS", fail: "x FAIL", bullet: "-", gte: ">="}
)

// Text writes the human-readable compliance report
func Text(w io.Writer, res wcag.Result, opts Options) error {
	sym := unicodeSymbols
	if opts.ASCII {
		sym = asciiSymbols
	}

	var b strings.Builder
	heavy := ui.Muted("%s", strings.Repeat("=", ruleWidth))
	light := ui.Muted("%s", strings.Repeat("-", ruleWidth))

	fmt.Fprintln(&b, heavy)
	fmt.Fprintln(&b, ui.Heading("WCAG Color Contrast Analysis"))
	fmt.Fprintln(&b, heavy)
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Foreground: %s\n", colorLine(res.Foreground, opts.Swatch))
	fmt.Fprintf(&b, "Background: %s\n", colorLine(res.Background, opts.Swatch))
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "Contrast Ratio: %s\n", ui.Accent("%s", res.Ratio))
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, ui.Bold("WCAG Compliance:"))
	fmt.Fprintln(&b, light)

	current := ""
	for _, th := range wcag.Thresholds() {
		if th.Level != current {
			if current != "" {
				fmt.Fprintln(&b)
			}
			fmt.Fprintf(&b, "Level %s:\n", th.Level)
			current = th.Level
		}

		label := "Normal text (< 18pt):"
		if th.Size == wcag.LargeText {
			label = fmt.Sprintf("Large text (%s 18pt):", sym.gte)
		}
		status := ui.Success("%s", sym.pass)
		if !th.Passed(res.Compliance) {
			status = ui.Error("%s", sym.fail)
		}
		fmt.Fprintf(&b, "  %s %s %s %s\n",
			sym.bullet,
			ui.PadRight(label, 25),
			status,
			ui.Muted("(requires %.1f:1)", float64(th.Minimum)))
	}
	fmt.Fprintln(&b)

	style := ui.ForLevel(res.Level == wcag.LevelAAA || res.Level == wcag.LevelAA, res.Level == wcag.LevelAALarge)
	fmt.Fprintln(&b, heavy)
	fmt.Fprintf(&b, "Overall: %s\n", style("%s", res.Level))
	fmt.Fprintln(&b, heavy)
	fmt.Fprintf(&b, "%s %s\n", ui.Muted("See"), ui.FormatDocsLink("contrast-minimum", "Understanding SC 1.4.3"))

	_, err := io.WriteString(w, b.String())
	return err
}

func colorLine(c color.Color, swatch bool) string {
	line := c.String()
	if swatch {
		r, g, b := c.RGB255()
		if s := ui.Swatch(r, g, b); s != "" {
			line += " " + s
		}
	}
	return line
}

type jsonColor struct {
	Hex string `json:"hex"`
	RGB [3]int `json:"rgb"`
}

type jsonResult struct {
	Foreground jsonColor       `json:"foreground"`
	Background jsonColor       `json:"background"`
	Ratio      float64         `json:"ratio"`
	RatioExact float64         `json:"ratio_exact"`
	Compliance wcag.Compliance `json:"compliance"`
	Level      string          `json:"level"`
	Summary    string          `json:"summary"`
}

func toJSONColor(c color.Color) jsonColor {
	r, g, b := c.RGB255()
	return jsonColor{Hex: c.Hex(), RGB: [3]int{int(r), int(g), int(b)}}
}

// JSON writes the result as a single indented JSON object
func JSON(w io.Writer, res wcag.Result) error {
	out := jsonResult{
		Foreground: toJSONColor(res.Foreground),
		Background: toJSONColor(res.Background),
		Ratio:      math.Round(float64(res.Ratio)*100) / 100,
		RatioExact: float64(res.Ratio),
		Compliance: res.Compliance,
		Level:      res.Level.Label(),
		Summary:    res.Level.String(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
