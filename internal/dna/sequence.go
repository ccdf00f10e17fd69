package dna

import (
	"math/rand"
	"sort"
	"strings"
)

// Letters is the accepted DNA alphabet.
const Letters = "ATGC"

var complement = map[byte]byte{
	'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G',
}

// Complement returns the Watson-Crick complement of seq. Input is
// case-insensitive; output is uppercase. Unrecognized characters map to the
// sentinel 'N' rather than failing, so callers never see an error here.
func Complement(seq string) string {
	s := strings.ToUpper(seq)
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c, ok := complement[s[i]]
		if !ok {
			c = 'N'
		}
		out[i] = c
	}
	return string(out)
}

// GCContent returns the percentage of G and C bases in seq, in [0,100].
// An empty sequence yields 0.
func GCContent(seq string) float64 {
	if len(seq) == 0 {
		return 0
	}
	s := strings.ToUpper(seq)
	gc := strings.Count(s, "G") + strings.Count(s, "C")
	return float64(gc) / float64(len(s)) * 100
}

// MeltingTemperature estimates the duplex melting temperature in °C using the
// Wallace rule: 2°C per A/T plus 4°C per G/C. This is a coarse linear
// approximation for short oligos, not a biologically exact model.
func MeltingTemperature(seq string) float64 {
	s := strings.ToUpper(seq)
	at := strings.Count(s, "A") + strings.Count(s, "T")
	gc := strings.Count(s, "G") + strings.Count(s, "C")
	return float64(at*2 + gc*4)
}

// Random returns a uniformly random sequence of length n over Letters.
func Random(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = Letters[rand.Intn(len(Letters))]
	}
	return string(out)
}

// Validation reports whether a sequence is restricted to the DNA alphabet.
// Invalid characters are reported, never rejected: only an empty input is an
// error (see ErrEmptySequence).
type Validation struct {
	Sequence string // trimmed, uppercased input
	Invalid  []rune // distinct characters outside Letters, sorted
}

// Valid reports whether no invalid characters were found.
func (v Validation) Valid() bool { return len(v.Invalid) == 0 }

// Validate normalizes seq (trim + uppercase) and reports any characters
// outside the DNA alphabet. Returns ErrEmptySequence when the trimmed input
// is empty.
func Validate(seq string) (Validation, error) {
	s := strings.ToUpper(strings.TrimSpace(seq))
	if s == "" {
		return Validation{}, ErrEmptySequence()
	}
	seen := map[rune]bool{}
	var invalid []rune
	for _, r := range s {
		if strings.ContainsRune(Letters, r) || seen[r] {
			continue
		}
		seen[r] = true
		invalid = append(invalid, r)
	}
	sort.Slice(invalid, func(i, j int) bool { return invalid[i] < invalid[j] })
	return Validation{Sequence: s, Invalid: invalid}, nil
}
