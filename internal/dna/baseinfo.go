package dna

import (
	"strings"

	"helixd/pkg/types"
)

var baseInfo = map[string]types.BaseInfo{
	"A": {
		Name:        "Adenine",
		Type:        "Purine",
		Formula:     "C₅H₅N₅",
		PairsWith:   "Thymine",
		Bonds:       2,
		Color:       "#ff6b6b",
		Description: "A purine base that pairs with thymine through two hydrogen bonds.",
	},
	"T": {
		Name:        "Thymine",
		Type:        "Pyrimidine",
		Formula:     "C₅H₆N₂O₂",
		PairsWith:   "Adenine",
		Bonds:       2,
		Color:       "#ffd93d",
		Description: "A pyrimidine base that pairs with adenine through two hydrogen bonds.",
	},
	"G": {
		Name:        "Guanine",
		Type:        "Purine",
		Formula:     "C₅H₅N₅O",
		PairsWith:   "Cytosine",
		Bonds:       3,
		Color:       "#6bcf7f",
		Description: "A purine base that pairs with cytosine through three hydrogen bonds.",
	},
	"C": {
		Name:        "Cytosine",
		Type:        "Pyrimidine",
		Formula:     "C₄H₅N₃O",
		PairsWith:   "Guanine",
		Bonds:       3,
		Color:       "#4dabf7",
		Description: "A pyrimidine base that pairs with guanine through three hydrogen bonds.",
	},
}

// BaseInfo returns the static metadata for one base letter, case-insensitive.
// Returns ErrUnknownBase for anything outside A, T, G, C.
func BaseInfo(base string) (types.BaseInfo, error) {
	b := strings.ToUpper(strings.TrimSpace(base))
	info, ok := baseInfo[b]
	if !ok {
		return types.BaseInfo{}, ErrUnknownBase(b)
	}
	return info, nil
}
