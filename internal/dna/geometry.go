package dna

import (
	"math"

	"helixd/pkg/types"
)

// Generation length bounds for random sequences.
const (
	MinLength = 1
	MaxLength = 100
)

// Geometry holds the two parameters that shape the rendered helix. Defaults
// come from types.DefaultConfig.
type Geometry struct {
	HelixRadius      float64
	BasePairDistance float64
}

// Build places every base of seq and its complement on the double helix and
// returns the full Sequence record.
//
// The angular sweep is normalized by the total pair count: index i of N pairs
// sits at angle (i/N)*4π, so every sequence spans exactly two full turns
// regardless of length and the per-base angle step shrinks as N grows. The
// sweep is a renderer contract; do not switch it to a fixed per-base pitch.
//
// The helix is centered vertically: y = (i - N/2) * BasePairDistance. The
// strand-2 base sits diametrically opposite strand 1 at the same height
// (angle + π). Output interleaves strands per index: strand 1 then strand 2
// for i = 0, 1, ... N-1, both carrying PairIndex = i.
func Build(seq string, g Geometry) types.Sequence {
	comp := Complement(seq)
	n := len(seq)

	bases := make([]types.Base, 0, 2*n)
	for i := 0; i < n; i++ {
		// n > 0 inside this loop, so the normalization below cannot divide by zero.
		angle := float64(i) / float64(n) * 4 * math.Pi
		y := (float64(i) - float64(n)/2) * g.BasePairDistance

		bases = append(bases, types.Base{
			Type:      string(seq[i]),
			Position:  [3]float64{g.HelixRadius * math.Cos(angle), y, g.HelixRadius * math.Sin(angle)},
			Strand:    1,
			Index:     i,
			PairIndex: i,
		}, types.Base{
			Type:      string(comp[i]),
			Position:  [3]float64{g.HelixRadius * math.Cos(angle+math.Pi), y, g.HelixRadius * math.Sin(angle+math.Pi)},
			Strand:    2,
			Index:     i,
			PairIndex: i,
		})
	}

	return types.Sequence{
		Sequence:           seq,
		Length:             n,
		Bases:              bases,
		GCContent:          GCContent(seq),
		MeltingTemperature: MeltingTemperature(seq),
		Complement:         comp,
	}
}
