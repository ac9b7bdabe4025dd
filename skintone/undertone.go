package skintone

import (
	"fmt"
	"strings"
)

// Undertone is the closed 3-way undertone classification. Constructing one
// from a string goes through ParseUndertone, which rejects anything outside
// the three fixed categories.
type Undertone int

const (
	Warm Undertone = iota
	Cool
	Neutral
)

type UnknownUndertoneError struct {
	Value string
}

func (e UnknownUndertoneError) Error() string {
	return fmt.Sprintf("unknown undertone category %q: expected warm, cool or neutral", e.Value)
}

func (u Undertone) String() string {
	switch u {
	case Warm:
		return "warm"
	case Cool:
		return "cool"
	case Neutral:
		return "neutral"
	}
	return fmt.Sprintf("undertone(%d)", int(u))
}

// ParseUndertone resolves a category string to its Undertone,
// case-insensitively.
func ParseUndertone(s string) (Undertone, error) {
	switch strings.ToLower(s) {
	case "warm":
		return Warm, nil
	case "cool":
		return Cool, nil
	case "neutral":
		return Neutral, nil
	}
	return 0, UnknownUndertoneError{Value: s}
}

// Undertones lists the categories in their fixed reference order.
var Undertones = [3]Undertone{Warm, Cool, Neutral}

// Profile carries the fixed reference data for one undertone category.
type Profile struct {
	Undertone   Undertone `json:"undertone"`
	Description string    `json:"description"`
	// Families are the informational color-family labels for the category.
	Families []string `json:"families"`
	// Colors are the 10 recommended upper-wear colors, best match first.
	Colors []string `json:"colors"`
	// Outfits are the 3 reference outfit examples.
	Outfits []string `json:"outfits"`
}

var profiles = [3]Profile{
	{
		Undertone:   Warm,
		Description: "Golden/Yellow",
		Families:    []string{"Golden", "Yellow", "Peach"},
		Colors: []string{
			"Warm Brown", "Terracotta", "Camel", "Burnt Orange", "Mustard Yellow",
			"Rust Red", "Golden Beige", "Coral Pink", "Olive Green", "Cream White",
		},
		Outfits: []string{
			"Terracotta blouse with black trousers and gold accessories",
			"Burnt orange sweater with dark denim jeans",
			"Camel-colored cardigan with white pants and brown belt",
		},
	},
	{
		Undertone:   Cool,
		Description: "Pink/Red",
		Families:    []string{"Pink", "Red", "Blue"},
		Colors: []string{
			"Navy Blue", "Crisp White", "Steel Blue", "Charcoal Grey", "Emerald Green",
			"Royal Purple", "Cool Pink", "Silver Grey", "Icy Blue", "Deep Teal",
		},
		Outfits: []string{
			"Navy blue shirt with beige chinos and silver watch",
			"Emerald green top with white jeans and pearl necklace",
			"Steel blue blouse with charcoal grey trousers",
		},
	},
	{
		Undertone:   Neutral,
		Description: "Balanced",
		Families:    []string{"Balanced", "Mixed"},
		Colors: []string{
			"Classic Black", "Pure White", "Medium Grey", "Sage Green", "Taupe Brown",
			"Soft Beige", "Dusty Rose", "Slate Blue", "Warm Ivory", "Mushroom Grey",
		},
		Outfits: []string{
			"Charcoal grey shirt with dark denim and black leather belt",
			"Sage green cardigan with cream-colored pants",
			"Classic white blouse with taupe brown blazer",
		},
	},
}

// GetProfile returns the reference profile for an undertone with its
// interior slices copied, so callers cannot mutate the fixed tables.
func GetProfile(u Undertone) (Profile, error) {
	if int(u) < 0 || int(u) >= len(profiles) {
		return Profile{}, UnknownUndertoneError{Value: u.String()}
	}
	p := profiles[u]
	p.Families = append([]string(nil), p.Families...)
	p.Colors = append([]string(nil), p.Colors...)
	p.Outfits = append([]string(nil), p.Outfits...)
	return p, nil
}

// Profiles returns all three undertone profiles in reference order.
func Profiles() []Profile {
	all := make([]Profile, 0, len(profiles))
	for _, u := range Undertones {
		p, _ := GetProfile(u)
		all = append(all, p)
	}
	return all
}
