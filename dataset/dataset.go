package dataset

import (
	"strings"

	"github.com/chromatone/api/skintone"
)

// Row is one materialized (tone level x undertone) combination. The color
// and outfit columns are joined strings, matching the exported CSV shape.
type Row struct {
	SkinToneName       string `json:"skinToneName"`
	SkinToneLevel      int    `json:"skinToneLevel"`
	UndertoneType      string `json:"undertoneType"`
	UpperWearColors    string `json:"upperWearColors"`
	ExampleOutfitIdeas string `json:"exampleOutfitIdeas"`
}

// Build materializes the full cross-product of the two reference tables:
// 10 tone levels x 3 undertones, one row each.
func Build() ([]Row, error) {
	rows := make([]Row, 0, len(skintone.Scale)*len(skintone.Undertones))

	for _, level := range skintone.Scale {
		for _, undertone := range skintone.Undertones {
			colors, err := skintone.RecommendedColors(undertone)
			if err != nil {
				return nil, err
			}
			outfits, err := skintone.OutfitExamples(undertone)
			if err != nil {
				return nil, err
			}

			rows = append(rows, Row{
				SkinToneName:       level.Name,
				SkinToneLevel:      level.Level,
				UndertoneType:      undertone.String(),
				UpperWearColors:    strings.Join(colors, ", "),
				ExampleOutfitIdeas: strings.Join(outfits, " | "),
			})
		}
	}

	return rows, nil
}
