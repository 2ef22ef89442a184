package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	// funcPattern matches the outer shape of rgb()/rgba()/hsl()/hsla()
	funcPattern = regexp.MustCompile(`(?is)^(rgba?|hsla?)\s*\((.*)\)$`)

	hexPattern = regexp.MustCompile(`(?i)^#?([0-9a-f]{3}|[0-9a-f]{6})$`)

	intPattern     = regexp.MustCompile(`^[0-9]+$`)
	huePattern     = regexp.MustCompile(`(?i)^([+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+))(deg)?$`)
	percentPattern = regexp.MustCompile(`^((?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+))%$`)
	alphaPattern   = regexp.MustCompile(`^((?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+))(%)?$`)
)

// grammar is one candidate color syntax. matched reports whether the input
// has the grammar's structure; err is only meaningful when matched is true.
type grammar struct {
	format Format
	parse  func(s string) (c Color, matched bool, err error)
}

// grammars in precedence order: the first structural match decides.
var grammars = []grammar{
	{FormatRGB, parseRGBFunc},
	{FormatHSL, parseHSLFunc},
	{FormatHex, parseHex},
	{FormatNamed, parseNamed},
}

// Parse converts a CSS color string into a Color.
//
// Accepted forms are rgb()/rgba() with integer channels, hsl()/hsla() with
// percentage saturation and lightness, #rgb and #rrggbb hex (the '#' is
// optional) and CSS color names. Alpha components are validated and then
// discarded. Out-of-range components are rejected, never clamped.
func Parse(input string) (Color, error) {
	c, _, err := ParseFormat(input)
	return c, err
}

// ParseFormat is Parse, also reporting which grammar matched
func ParseFormat(input string) (Color, Format, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Color{}, FormatUnknown, parseErrorf(input, "empty color")
	}

	for _, g := range grammars {
		c, matched, err := g.parse(s)
		if !matched {
			continue
		}
		if err != nil {
			return Color{}, g.format, &ParseError{Input: input, Reason: err.Error()}
		}
		return c, g.format, nil
	}

	return Color{}, FormatUnknown, parseErrorf(input, "not a recognized color format or name")
}

// AcceptedFormats lists example inputs for user-facing diagnostics
func AcceptedFormats() []string {
	return []string{
		"hex: '#fff', '#ffffff', 'ffffff'",
		"rgb: 'rgb(255, 255, 255)', 'rgba(0, 0, 0, 0.5)'",
		"hsl: 'hsl(210, 50%, 40%)', 'hsla(210, 50%, 40%, 1)'",
		fmt.Sprintf("named: 'white', 'steelblue' (%d CSS names)", Names()),
	}
}

// splitFunc matches name(args) and returns the lowercased name and trimmed args
func splitFunc(s string) (name string, args []string, ok bool) {
	m := funcPattern.FindStringSubmatch(s)
	if m == nil {
		return "", nil, false
	}
	name = strings.ToLower(m[1])
	for _, a := range strings.Split(m[2], ",") {
		args = append(args, strings.TrimSpace(a))
	}
	return name, args, true
}

func parseRGBFunc(s string) (Color, bool, error) {
	name, args, ok := splitFunc(s)
	if !ok || !strings.HasPrefix(name, "rgb") {
		return Color{}, false, nil
	}
	if len(args) != 3 && len(args) != 4 {
		return Color{}, true, fmt.Errorf("%s() takes 3 or 4 components, got %d", name, len(args))
	}

	var ch [3]int
	for i := 0; i < 3; i++ {
		v, err := parseChannel(args[i])
		if err != nil {
			return Color{}, true, err
		}
		ch[i] = v
	}
	if len(args) == 4 {
		if err := checkAlpha(args[3]); err != nil {
			return Color{}, true, err
		}
	}
	return from255(ch[0], ch[1], ch[2]), true, nil
}

func parseHSLFunc(s string) (Color, bool, error) {
	name, args, ok := splitFunc(s)
	if !ok || !strings.HasPrefix(name, "hsl") {
		return Color{}, false, nil
	}
	if len(args) != 3 && len(args) != 4 {
		return Color{}, true, fmt.Errorf("%s() takes 3 or 4 components, got %d", name, len(args))
	}

	h, err := parseHue(args[0])
	if err != nil {
		return Color{}, true, err
	}
	sat, err := parsePercent("saturation", args[1])
	if err != nil {
		return Color{}, true, err
	}
	light, err := parsePercent("lightness", args[2])
	if err != nil {
		return Color{}, true, err
	}
	if len(args) == 4 {
		if err := checkAlpha(args[3]); err != nil {
			return Color{}, true, err
		}
	}

	c := colorful.Hsl(h, sat/100, light/100).Clamped()
	return Color{R: c.R, G: c.G, B: c.B}, true, nil
}

func parseHex(s string) (Color, bool, error) {
	m := hexPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, false, nil
	}
	digits := strings.ToLower(m[1])
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}

	hc, err := colorful.Hex("#" + digits)
	if err != nil {
		return Color{}, true, fmt.Errorf("bad hex digits %q", m[1])
	}
	// snap to exact n/255 channels so equal colors compare equal across grammars
	r, g, b := hc.RGB255()
	return from255(int(r), int(g), int(b)), true, nil
}

func parseNamed(s string) (Color, bool, error) {
	c, ok := Lookup(s)
	return c, ok, nil
}

func parseChannel(tok string) (int, error) {
	if !intPattern.MatchString(tok) {
		return 0, fmt.Errorf("rgb component %q is not an integer", tok)
	}
	v, err := strconv.Atoi(tok)
	if err != nil || v > 255 {
		return 0, fmt.Errorf("rgb component %s out of range 0-255", tok)
	}
	return v, nil
}

// parseHue accepts any real number of degrees and normalizes it into [0, 360)
func parseHue(tok string) (float64, error) {
	m := huePattern.FindStringSubmatch(tok)
	if m == nil {
		return 0, fmt.Errorf("hue %q is not a number", tok)
	}
	h, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("hue %q is not a number", tok)
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h, nil
}

func parsePercent(what, tok string) (float64, error) {
	m := percentPattern.FindStringSubmatch(tok)
	if m == nil {
		return 0, fmt.Errorf("%s %q must be a percentage like 50%%", what, tok)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil || v > 100 {
		return 0, fmt.Errorf("%s %s out of range 0%%-100%%", what, tok)
	}
	return v, nil
}

// checkAlpha validates an alpha component; its value is not used
func checkAlpha(tok string) error {
	m := alphaPattern.FindStringSubmatch(tok)
	if m == nil {
		return fmt.Errorf("alpha %q is not a number", tok)
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return fmt.Errorf("alpha %q is not a number", tok)
	}
	limit := 1.0
	if m[2] == "%" {
		limit = 100
	}
	if v > limit {
		return fmt.Errorf("alpha %s out of range", tok)
	}
	return nil
}
