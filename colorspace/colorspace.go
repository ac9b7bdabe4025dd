package colorspace

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a single sampled color with 8-bit channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// HSL holds a converted color. Hue is in degrees [0,360), saturation and
// lightness are percentages [0,100].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

type InvalidColorFormatError struct {
	Input  string
	Reason string
}

func (e InvalidColorFormatError) Error() string {
	return fmt.Sprintf("invalid color %q: %v", e.Input, e.Reason)
}

// ParseHex decodes a "#RRGGBB" string into an RGB triple. The leading "#"
// is optional; hex digits may be either case.
func ParseHex(s string) (RGB, error) {
	cleaned := strings.TrimPrefix(s, "#")
	if len(cleaned) != 6 {
		return RGB{}, InvalidColorFormatError{Input: s, Reason: "expected 6 hex digits"}
	}

	var channels [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(cleaned[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, InvalidColorFormatError{Input: s, Reason: "non-hexadecimal digit"}
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Hex formats the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HSL converts the color to hue/saturation/lightness. A color with equal
// channels is achromatic and maps to H=0, S=0.
func (c RGB) HSL() HSL {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxC := max3(r, g, b)
	minC := min3(r, g, b)

	l := (maxC + minC) / 2
	if maxC == minC {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := maxC - minC

	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h /= 6

	return HSL{H: h * 360, S: s * 100, L: l * 100}
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
