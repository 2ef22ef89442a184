package color

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an sRGB color with each channel in [0, 1].
// Values are produced by Parse and never modified afterwards.
type Color struct {
	R, G, B float64
}

// Common reference colors
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// Format identifies the grammar a color string was parsed with
type Format int

const (
	FormatUnknown Format = iota // no grammar matched
	FormatRGB
	FormatHSL
	FormatHex
	FormatNamed
)

// String returns the lowercase grammar name, used as a metrics label
func (f Format) String() string {
	switch f {
	case FormatRGB:
		return "rgb"
	case FormatHSL:
		return "hsl"
	case FormatHex:
		return "hex"
	case FormatNamed:
		return "named"
	default:
		return "unknown"
	}
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
}

// Hex returns the canonical lowercase #rrggbb form
func (c Color) Hex() string {
	return c.toColorful().Hex()
}

// RGB255 returns the channels rounded to 0-255 integers
func (c Color) RGB255() (r, g, b uint8) {
	return c.toColorful().RGB255()
}

// String renders the color as "#rrggbb (rgb(r, g, b))".
func (c Color) String() string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("%s (rgb(%d, %d, %d))", c.Hex(), r, g, b)
}
