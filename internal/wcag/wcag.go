// Package wcag implements the WCAG 2.0 relative luminance and contrast ratio
// calculations, and classifies ratios against the AA and AAA success criteria.
package wcag

import (
	"fmt"
	"math"

	"wcag-contrast/internal/color"
)

// Luminance is the WCAG relative luminance of a color, in [0, 1]
type Luminance float64

// Ratio is a WCAG contrast ratio, in [1, 21]
type Ratio float64

// String formats the ratio as "12.63:1"
func (r Ratio) String() string {
	return fmt.Sprintf("%.2f:1", float64(r))
}

// sRGB linearization and BT.709 luma coefficients
const (
	linearThreshold = 0.03928
	linearScale     = 12.92

	redWeight   = 0.2126
	greenWeight = 0.7152
	blueWeight  = 0.0722

	// flare offset added to both luminances before dividing
	flare = 0.05
)

func linearize(v float64) float64 {
	if v <= linearThreshold {
		return v / linearScale
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the relative luminance of c
func RelativeLuminance(c color.Color) Luminance {
	return Luminance(redWeight*linearize(c.R) +
		greenWeight*linearize(c.G) +
		blueWeight*linearize(c.B))
}

// ContrastRatio returns the contrast ratio between a and b.
// The lighter color is always the numerator, so the result does not depend
// on argument order.
func ContrastRatio(a, b color.Color) Ratio {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	lighter := math.Max(float64(la), float64(lb))
	darker := math.Min(float64(la), float64(lb))
	return Ratio((lighter + flare) / (darker + flare))
}

// Result is the full outcome of checking one foreground/background pair
type Result struct {
	Foreground color.Color
	Background color.Color
	Ratio      Ratio
	Compliance Compliance
	Level      Level
}

// Check computes the ratio and compliance for a foreground on a background
func Check(fg, bg color.Color) Result {
	ratio := ContrastRatio(fg, bg)
	compliance := Evaluate(ratio)
	return Result{
		Foreground: fg,
		Background: bg,
		Ratio:      ratio,
		Compliance: compliance,
		Level:      compliance.Level(),
	}
}
