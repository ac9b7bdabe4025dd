package skintone

import (
	"fmt"

	"github.com/chromatone/api/colorspace"
)

var ErrNoSamples = fmt.Errorf("at least one color sample is required")

// Analysis is the result of classifying a set of color samples.
type Analysis struct {
	Level         int       `json:"skinToneLevel"`
	LevelName     string    `json:"skinToneName"`
	Undertone     Undertone `json:"-"`
	UndertoneType string    `json:"undertoneType"`
	UndertoneDesc string    `json:"undertoneDescription"`
	Hue           float64   `json:"hue"`
	Saturation    float64   `json:"saturation"`
	Lightness     float64   `json:"lightness"`
}

// ResolveUndertone maps a mean hue to its undertone band. The warm band is
// checked first so a hue of exactly 20 degrees classifies as warm even
// though it also sits on the cool band's boundary.
func ResolveUndertone(hue float64) (Undertone, string) {
	switch {
	case hue >= 20 && hue <= 50:
		return Warm, "Golden/Yellow"
	case hue >= 300 || hue <= 20:
		return Cool, "Pink/Red"
	}
	return Neutral, "Balanced"
}

// Classify aggregates one or more color samples into a tone analysis. Hue
// and lightness are averaged arithmetically across samples, then resolved
// against the fixed scale and undertone bands.
//
// The hue average is a plain arithmetic mean, not a circular one, matching
// the reference behavior; hues straddling the 0/360 wrap can skew it, but
// the three undertone bands are broad enough that this rarely changes the
// classification.
func Classify(samples []colorspace.RGB) (Analysis, error) {
	if len(samples) == 0 {
		return Analysis{}, ErrNoSamples
	}

	var sumH, sumS, sumL float64
	for _, sample := range samples {
		hsl := sample.HSL()
		sumH += hsl.H
		sumS += hsl.S
		sumL += hsl.L
	}

	n := float64(len(samples))
	meanH := sumH / n
	meanS := sumS / n
	meanL := sumL / n

	level := ResolveLevel(meanL)
	undertone, desc := ResolveUndertone(meanH)

	return Analysis{
		Level:         level.Level,
		LevelName:     level.Name,
		Undertone:     undertone,
		UndertoneType: undertone.String(),
		UndertoneDesc: desc,
		Hue:           meanH,
		Saturation:    meanS,
		Lightness:     meanL,
	}, nil
}

// ClassifyHex decodes a list of "#RRGGBB" strings and classifies them.
func ClassifyHex(colors []string) (Analysis, error) {
	if len(colors) == 0 {
		return Analysis{}, ErrNoSamples
	}

	samples := make([]colorspace.RGB, 0, len(colors))
	for _, hex := range colors {
		sample, err := colorspace.ParseHex(hex)
		if err != nil {
			return Analysis{}, err
		}
		samples = append(samples, sample)
	}

	return Classify(samples)
}
