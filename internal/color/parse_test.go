package color

import (
	"errors"
	"math"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHex    string
		wantFormat Format
	}{
		// Hex
		{"hex 6 digit", "#336699", "#336699", FormatHex},
		{"hex 3 digit", "#abc", "#aabbcc", FormatHex},
		{"hex uppercase", "#FFFFFF", "#ffffff", FormatHex},
		{"hex no hash", "ff0000", "#ff0000", FormatHex},
		{"hex short no hash", "333", "#333333", FormatHex},
		{"hex padded", "  #fff  ", "#ffffff", FormatHex},
		{"hex mixed case short", "#AbC", "#aabbcc", FormatHex},

		// rgb/rgba
		{"rgb", "rgb(255, 0, 0)", "#ff0000", FormatRGB},
		{"rgb tight", "rgb(0,128,255)", "#0080ff", FormatRGB},
		{"rgb spaced", "rgb( 10 ,  20 , 30 )", "#0a141e", FormatRGB},
		{"rgb uppercase", "RGB(1,2,3)", "#010203", FormatRGB},
		{"rgb space before paren", "rgb (1,2,3)", "#010203", FormatRGB},
		{"rgba alpha ignored", "rgba(0, 0, 0, 0.5)", "#000000", FormatRGB},
		{"rgba percent alpha", "rgba(0, 0, 0, 50%)", "#000000", FormatRGB},
		{"rgba without alpha", "rgba(1, 2, 3)", "#010203", FormatRGB},
		{"rgb newline between args", "rgb(255,\n255, 255)", "#ffffff", FormatRGB},
		{"rgb newline inside parens", "rgb(\n255,255,255\n)", "#ffffff", FormatRGB},

		// hsl/hsla
		{"hsl red", "hsl(0, 100%, 50%)", "#ff0000", FormatHSL},
		{"hsl green", "hsl(120, 100%, 50%)", "#00ff00", FormatHSL},
		{"hsl blue deg", "hsl(240deg, 100%, 50%)", "#0000ff", FormatHSL},
		{"hsl gray", "hsl(0, 0%, 50%)", "#808080", FormatHSL},
		{"hsl wraps 360", "hsl(360, 100%, 50%)", "#ff0000", FormatHSL},
		{"hsl negative hue", "hsl(-120, 100%, 50%)", "#0000ff", FormatHSL},
		{"hsl fractional", "hsl(0.0, 0.0%, 100.0%)", "#ffffff", FormatHSL},
		{"hsla", "HSLA(120, 100%, 25%, 0.3)", "#008000", FormatHSL},
		{"hsl crlf between args", "hsl(0,\r\n0%, 100%)", "#ffffff", FormatHSL},

		// Named
		{"named white", "white", "#ffffff", FormatNamed},
		{"named steelblue", "steelblue", "#4682b4", FormatNamed},
		{"named mixed case", "DarkGreen", "#006400", FormatNamed},
		{"named green is 128", "green", "#008000", FormatNamed},
		{"named rebeccapurple", "RebeccaPurple", "#663399", FormatNamed},
		{"named padded", "  navy ", "#000080", FormatNamed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, format, err := ParseFormat(tt.input)
			if err != nil {
				t.Fatalf("ParseFormat(%q) unexpected error: %v", tt.input, err)
			}
			if got := c.Hex(); got != tt.wantHex {
				t.Errorf("ParseFormat(%q) hex = %s, want %s", tt.input, got, tt.wantHex)
			}
			if format != tt.wantFormat {
				t.Errorf("ParseFormat(%q) format = %v, want %v", tt.input, format, tt.wantFormat)
			}
		})
	}
}

func TestParseEquivalence(t *testing.T) {
	inputs := []string{"#fff", "#ffffff", "white", "rgb(255,255,255)", "hsl(0, 0%, 100%)"}

	want, err := Parse(inputs[0])
	if err != nil {
		t.Fatal(err)
	}
	if want != White {
		t.Fatalf("Parse(%q) = %+v, want %+v", inputs[0], want, White)
	}
	for _, in := range inputs[1:] {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", in, err)
		}
		if got != want {
			t.Errorf("Parse(%q) = %+v, want %+v", in, got, want)
		}
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"unknown name", "notacolor"},
		{"rgb out of range", "rgb(256,0,0)"},
		{"rgb negative", "rgb(-1,0,0)"},
		{"rgb decimal", "rgb(1.5,0,0)"},
		{"rgb too few", "rgb(1,2)"},
		{"rgb too many", "rgb(1,2,3,4,5)"},
		{"rgb empty", "rgb()"},
		{"rgb missing component", "rgb(1,,3)"},
		{"rgba alpha too large", "rgba(0,0,0,2)"},
		{"rgba alpha percent too large", "rgba(0,0,0,150%)"},
		{"rgba alpha garbage", "rgba(0,0,0,x)"},
		{"hsl saturation over 100", "hsl(0, 101%, 50%)"},
		{"hsl lightness over 100", "hsl(0, 50%, 100.5%)"},
		{"hsl missing percent", "hsl(0, 50, 50)"},
		{"hsl bad hue", "hsl(red, 50%, 50%)"},
		{"hex bad digit", "#ggg"},
		{"hex wrong length", "#ffff"},
		{"hex too long", "#fffffff"},
		{"hash name", "#white"},
		{"unclosed", "rgb(1,2,3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) expected error, got nil", tt.input)
			}
			if !errors.Is(err, ErrInvalidColor) {
				t.Errorf("Parse(%q) error %v does not match ErrInvalidColor", tt.input, err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse(%q) error %T is not *ParseError", tt.input, err)
			}
			if pe.Input != tt.input {
				t.Errorf("ParseError.Input = %q, want %q", pe.Input, tt.input)
			}
		})
	}
}

func TestMalformedFunctionDoesNotFallThrough(t *testing.T) {
	_, format, err := ParseFormat("rgb(300, 0, 0)")
	if err == nil {
		t.Fatal("expected error")
	}
	if format != FormatRGB {
		t.Errorf("format = %v, want %v", format, FormatRGB)
	}
}

func TestUnrecognizedFormatIsUnknown(t *testing.T) {
	for _, in := range []string{"transparent", "", "cmyk(0, 0, 0, 0)"} {
		_, format, err := ParseFormat(in)
		if err == nil {
			t.Fatalf("ParseFormat(%q) expected error", in)
		}
		if format != FormatUnknown {
			t.Errorf("ParseFormat(%q) format = %v, want %v", in, format, FormatUnknown)
		}
	}
	if FormatUnknown.String() != "unknown" {
		t.Errorf("FormatUnknown.String() = %q", FormatUnknown.String())
	}
}

func TestChannelsInRange(t *testing.T) {
	inputs := []string{
		"hsl(37, 100%, 99%)", "hsl(300, 100%, 1%)", "hsl(199.9, 33.3%, 66.6%)",
		"#000", "#fff", "rgb(0,255,0)", "yellowgreen",
	}
	for _, in := range inputs {
		c, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", in, err)
		}
		for _, v := range []float64{c.R, c.G, c.B} {
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Errorf("Parse(%q) channel %v outside [0,1]", in, v)
			}
		}
	}
}

func TestColorString(t *testing.T) {
	c, err := Parse("#336699")
	if err != nil {
		t.Fatal(err)
	}
	expected := "#336699 (rgb(51, 102, 153))"
	if got := c.String(); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("papayawhip"); !ok {
		t.Error("papayawhip should be a known name")
	}
	if _, ok := Lookup("notacolor"); ok {
		t.Error("notacolor should not be a known name")
	}
}
