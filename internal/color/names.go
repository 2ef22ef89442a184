package color

import (
	"strings"

	"golang.org/x/image/colornames"
)

// extraNames covers CSS names added after the SVG 1.1 set that colornames ships.
var extraNames = map[string]Color{
	"rebeccapurple": from255(0x66, 0x33, 0x99),
}

// Lookup resolves a CSS/X11 color name, ignoring case and surrounding space
func Lookup(name string) (Color, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := extraNames[key]; ok {
		return c, true
	}
	rgba, ok := colornames.Map[key]
	if !ok {
		return Color{}, false
	}
	return from255(int(rgba.R), int(rgba.G), int(rgba.B)), true
}

// Names returns the number of known color names.
func Names() int {
	return len(colornames.Map) + len(extraNames)
}

func from255(r, g, b int) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}
