package skintone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chromatone/api/colorspace"
)

func TestClassifyEmptyInput(t *testing.T) {
	_, err := Classify(nil)
	assert.ErrorIs(t, err, ErrNoSamples)

	_, err = Classify([]colorspace.RGB{})
	assert.ErrorIs(t, err, ErrNoSamples)

	_, err = ClassifyHex(nil)
	assert.ErrorIs(t, err, ErrNoSamples)
}

// A single sample classifies on exactly its own HSL values.
func TestClassifySingletonIdentity(t *testing.T) {
	sample, err := colorspace.ParseHex("#d7bd96")
	require.NoError(t, err)

	hsl := sample.HSL()
	got, err := Classify([]colorspace.RGB{sample})
	require.NoError(t, err)

	assert.InDelta(t, hsl.H, got.Hue, 1e-9)
	assert.InDelta(t, hsl.S, got.Saturation, 1e-9)
	assert.InDelta(t, hsl.L, got.Lightness, 1e-9)
}

func TestClassifyLightWarmSamples(t *testing.T) {
	got, err := ClassifyHex([]string{"#f3e7db", "#eadaba", "#d7bd96", "#f6ede4"})
	require.NoError(t, err)

	// mean lightness 84.3627... lands in Ivory's [80,85) band; the beige
	// hues average to 34 degrees, inside the warm band
	assert.InDelta(t, 84.362745, got.Lightness, 1e-6)
	assert.InDelta(t, 34.0, got.Hue, 1e-6)
	assert.Equal(t, 2, got.Level)
	assert.Equal(t, "Ivory", got.LevelName)
	assert.Equal(t, Warm, got.Undertone)
	assert.Equal(t, "warm", got.UndertoneType)
	assert.Equal(t, "Golden/Yellow", got.UndertoneDesc)
}

func TestClassifyDarkSamples(t *testing.T) {
	got, err := ClassifyHex([]string{"#292421", "#292421", "#292421"})
	require.NoError(t, err)

	// lightness 14.5 is deep in the Ebony band; the near-black sample still
	// carries a faint 22.5-degree hue, which sits inside the warm band
	assert.Equal(t, 10, got.Level)
	assert.Equal(t, "Ebony", got.LevelName)
	assert.InDelta(t, 14.509804, got.Lightness, 1e-6)
	assert.InDelta(t, 22.5, got.Hue, 1e-6)
	assert.Equal(t, Warm, got.Undertone)
}

func TestClassifyAchromaticSamples(t *testing.T) {
	got, err := ClassifyHex([]string{"#808080", "#808080"})
	require.NoError(t, err)

	// greys collapse to hue 0, which the cool band owns
	assert.Zero(t, got.Hue)
	assert.Zero(t, got.Saturation)
	assert.Equal(t, Cool, got.Undertone)
	assert.Equal(t, "Pink/Red", got.UndertoneDesc)
}

func TestClassifyHexRejectsMalformedColor(t *testing.T) {
	_, err := ClassifyHex([]string{"#f3e7db", "not-a-color"})
	var formatErr colorspace.InvalidColorFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, "not-a-color", formatErr.Input)
}

func TestClassifyNeverFailsOnValidColors(t *testing.T) {
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				sample := colorspace.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				got, err := Classify([]colorspace.RGB{sample})
				require.NoError(t, err)
				assert.GreaterOrEqual(t, got.Level, 1)
				assert.LessOrEqual(t, got.Level, 10)
			}
		}
	}
}

func TestResolveUndertoneBands(t *testing.T) {
	tests := []struct {
		hue  float64
		want Undertone
	}{
		{0, Cool},
		{10, Cool},
		{19.99, Cool},
		{20, Warm}, // boundary overlap resolves warm-first
		{20.01, Warm},
		{34, Warm},
		{50, Warm},
		{50.01, Neutral},
		{120, Neutral},
		{299.99, Neutral},
		{300, Cool},
		{359.99, Cool},
	}

	for _, tc := range tests {
		got, _ := ResolveUndertone(tc.hue)
		assert.Equal(t, tc.want, got, "hue %v", tc.hue)
	}
}
