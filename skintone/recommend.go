package skintone

// outfitLimit is how many of the reference outfit examples callers get
// back. The table holds 3; the recommendation surface shows the top 2.
const outfitLimit = 2

// RecommendedColors returns the fixed 10-entry upper-wear color list for
// an undertone, best match first.
func RecommendedColors(u Undertone) ([]string, error) {
	p, err := GetProfile(u)
	if err != nil {
		return nil, err
	}
	return p.Colors, nil
}

// OutfitExamples returns the first two reference outfit examples for an
// undertone, in table order.
func OutfitExamples(u Undertone) ([]string, error) {
	p, err := GetProfile(u)
	if err != nil {
		return nil, err
	}
	return p.Outfits[:outfitLimit], nil
}
