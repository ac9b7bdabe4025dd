package charts

import (
	"fmt"
	"io"

	colorful "github.com/lucasb-eyer/go-colorful"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/chromatone/api/dataset"
	"github.com/chromatone/api/skintone"
)

// RenderLevelDistribution writes a PNG bar chart of how many dataset rows
// each skin tone level has. Bars are tinted with the level's reference
// swatch.
func RenderLevelDistribution(w io.Writer, rows []dataset.Row) error {
	counts := make(map[int]int)
	for _, row := range rows {
		counts[row.SkinToneLevel]++
	}

	maxCount := 0
	for _, count := range counts {
		if count > maxCount {
			maxCount = count
		}
	}

	bars := make([]chart.Value, 0, len(skintone.Scale))
	for _, level := range skintone.Scale {
		fill, err := swatchColor(level.Swatch)
		if err != nil {
			return err
		}
		bars = append(bars, chart.Value{
			Value: float64(counts[level.Level]),
			Label: fmt.Sprintf("%d", level.Level),
			Style: chart.Style{FillColor: fill, StrokeColor: fill},
		})
	}

	graph := chart.BarChart{
		Title:    "Distribution of Skin Tone Levels",
		Width:    900,
		Height:   500,
		BarWidth: 50,
		Bars:     bars,
		YAxis: chart.YAxis{
			// every level has the same row count, so pin the range to keep
			// it non-degenerate
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount + 1)},
		},
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("error rendering level distribution chart: %v", err)
	}
	return nil
}

// RenderUndertoneDistribution writes a PNG pie chart of the dataset's
// undertone split.
func RenderUndertoneDistribution(w io.Writer, rows []dataset.Row) error {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[row.UndertoneType]++
	}

	values := make([]chart.Value, 0, len(skintone.Undertones))
	for _, undertone := range skintone.Undertones {
		name := undertone.String()
		values = append(values, chart.Value{
			Value: float64(counts[name]),
			Label: name,
		})
	}

	graph := chart.PieChart{
		Title:  "Distribution of Undertone Types",
		Width:  600,
		Height: 600,
		Values: values,
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("error rendering undertone distribution chart: %v", err)
	}
	return nil
}

func swatchColor(hex string) (drawing.Color, error) {
	parsed, err := colorful.Hex(hex)
	if err != nil {
		return drawing.Color{}, fmt.Errorf("error parsing swatch %q: %v", hex, err)
	}
	r, g, b := parsed.RGB255()
	return drawing.Color{R: r, G: g, B: b, A: 255}, nil
}
