package hexcolor

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Format selects the display representation of a color value.
type Format string

const (
	FormatHex Format = "hex"
	FormatRGB Format = "rgb"
	FormatHSL Format = "hsl"
)

var (
	hexPattern  = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	barePattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)
)

// ErrInvalid reports input that does not match the #RRGGBB grammar.
var ErrInvalid = fmt.Errorf("invalid hex color")

// RGB is a color as three 8-bit channels.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// HSL is a color as hue in degrees (0-359) and saturation/lightness percentages.
type HSL struct {
	H int
	S int
	L int
}

// Valid reports whether s is exactly "#" followed by six hex digits.
func Valid(s string) bool {
	return hexPattern.MatchString(s)
}

// Normalize returns the canonical uppercase "#RRGGBB" form of a valid color.
// Invalid input is returned unchanged.
func Normalize(s string) string {
	if barePattern.MatchString(s) {
		s = "#" + s
	}
	if !Valid(s) {
		return s
	}
	return "#" + strings.ToUpper(s[1:])
}

// Parse decodes "#RRGGBB" or "RRGGBB" into an RGB triple. Short forms, alpha
// channels and named colors are rejected, not corrected.
func Parse(s string) (RGB, error) {
	digits := s
	if strings.HasPrefix(s, "#") {
		digits = s[1:]
	}
	if !barePattern.MatchString(digits) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}

	value, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}

	return RGB{
		R: uint8(value >> 16),
		G: uint8(value >> 8),
		B: uint8(value),
	}, nil
}

// Hex returns the canonical uppercase "#RRGGBB" form of the triple.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// HSL converts the triple to hue/saturation/lightness. Hue is computed
// piecewise by the maximal channel, with a wheel wrap when the green-minus-blue
// term goes negative. Achromatic input yields zero hue and saturation.
func (c RGB) HSL() HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSL{H: 0, S: 0, L: roundPercent(l)}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60

	return HSL{
		H: int(math.Round(h)) % 360,
		S: roundPercent(s),
		L: roundPercent(l),
	}
}

// Display renders value in the requested format. The hex form is returned
// unchanged; a value that fails hex validation is returned unchanged
// regardless of the requested format.
func Display(value string, format Format) string {
	if !Valid(value) {
		return value
	}

	switch format {
	case FormatRGB:
		rgb, err := Parse(value)
		if err != nil {
			return value
		}
		return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
	case FormatHSL:
		rgb, err := Parse(value)
		if err != nil {
			return value
		}
		hsl := rgb.HSL()
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hsl.H, hsl.S, hsl.L)
	default:
		return value
	}
}

func roundPercent(v float64) int {
	return int(math.Round(v * 100))
}
