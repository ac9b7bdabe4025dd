package skintone

// ToneLevel is one band of the 10-level lightness scale. Level 1 is the
// lightest, level 10 the darkest. MinLightness/MaxLightness form a
// half-open interval [min, max) in percent; level 10 additionally absorbs
// anything the scan does not match.
type ToneLevel struct {
	Level        int     `json:"level"`
	Name         string  `json:"name"`
	Swatch       string  `json:"swatch"`
	MinLightness float64 `json:"minLightness"`
	MaxLightness float64 `json:"maxLightness"`
}

// Scale is the fixed reference table for skin tone levels. It is
// initialized once and never mutated, so concurrent reads need no locking.
var Scale = [10]ToneLevel{
	{Level: 1, Name: "Porcelain", Swatch: "#f6ede4", MinLightness: 85, MaxLightness: 100},
	{Level: 2, Name: "Ivory", Swatch: "#f3e7db", MinLightness: 80, MaxLightness: 85},
	{Level: 3, Name: "Light Beige", Swatch: "#f7ead0", MinLightness: 75, MaxLightness: 80},
	{Level: 4, Name: "Warm Beige", Swatch: "#eadaba", MinLightness: 70, MaxLightness: 75},
	{Level: 5, Name: "Golden Beige", Swatch: "#d7bd96", MinLightness: 65, MaxLightness: 70},
	{Level: 6, Name: "Tan", Swatch: "#a07e56", MinLightness: 55, MaxLightness: 65},
	{Level: 7, Name: "Medium Brown", Swatch: "#825c43", MinLightness: 45, MaxLightness: 55},
	{Level: 8, Name: "Deep Brown", Swatch: "#604134", MinLightness: 35, MaxLightness: 45},
	{Level: 9, Name: "Dark Espresso", Swatch: "#3a312a", MinLightness: 25, MaxLightness: 35},
	{Level: 10, Name: "Ebony", Swatch: "#292421", MinLightness: 0, MaxLightness: 25},
}

// ResolveLevel maps a lightness percentage to its tone level by scanning
// the intervals in ascending level order. Lightness at or above 100, or
// any other value no interval contains, falls back to level 10 rather than
// erroring.
func ResolveLevel(lightness float64) ToneLevel {
	for _, level := range Scale {
		if lightness >= level.MinLightness && lightness < level.MaxLightness {
			return level
		}
	}
	return Scale[9]
}
