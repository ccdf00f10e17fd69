package types

// Base is one nucleotide placed in 3D space on one of the two strands.
type Base struct {
	// Base letter, one of A, T, G, C (N for unrecognized input).
	// example: A
	Type string `json:"base_type" example:"A"`
	// Position in model space as [x, y, z].
	Position [3]float64 `json:"position"`
	// Strand number, 1 or 2.
	// example: 1
	Strand int `json:"strand" example:"1"`
	// Zero-based index along the sequence.
	// example: 0
	Index int `json:"index" example:"0"`
	// Index of the paired base on the opposite strand.
	// example: 0
	PairIndex int `json:"pair_index" example:"0"`
}

// Sequence is a generated DNA duplex with derived metadata and geometry.
type Sequence struct {
	// Strand-1 letters, 5'→3'.
	// example: ATGC
	Sequence string `json:"sequence" example:"ATGC"`
	// Number of base pairs.
	// example: 4
	Length int `json:"length" example:"4"`
	// All placed bases, strand 1 then strand 2 for each index.
	Bases []Base `json:"bases"`
	// Percentage of G and C bases, in [0,100].
	// example: 50
	GCContent float64 `json:"gc_content" example:"50"`
	// Wallace-rule melting temperature estimate in °C.
	// example: 12
	MeltingTemperature float64 `json:"melting_temperature" example:"12"`
	// Watson-Crick complement of Sequence.
	// example: TACG
	Complement string `json:"complementary_sequence" example:"TACG"`
}

// VisualizationConfig controls how viewers render the helix. Updates replace
// the whole record; there are no partial-patch semantics.
type VisualizationConfig struct {
	ShowBonds        bool    `json:"show_bonds" example:"false"`
	ShowLabels       bool    `json:"show_labels" example:"false"`
	ShowBackbone     bool    `json:"show_backbone" example:"true"`
	ShowAtoms        bool    `json:"show_atoms" example:"false"`
	AnimationSpeed   float64 `json:"animation_speed" example:"1.0"`
	HelixRadius      float64 `json:"helix_radius" example:"2.5"`
	BasePairDistance float64 `json:"base_pair_distance" example:"0.34"`
	RotationSpeed    float64 `json:"rotation_speed" example:"0.005"`
}

// DefaultConfig returns the startup visualization configuration.
func DefaultConfig() VisualizationConfig {
	return VisualizationConfig{
		ShowBackbone:     true,
		AnimationSpeed:   1.0,
		HelixRadius:      2.5,
		BasePairDistance: 0.34,
		RotationSpeed:    0.005,
	}
}

// GestureSample is one hand-tracking frame submitted by a viewer. Landmarks
// are the 21 tracked points of a hand skeleton, each [x, y] or [x, y, z] in
// normalized image space. Transient; never stored.
type GestureSample struct {
	Landmarks [][]float64 `json:"landmarks"`
	// Gesture type as reported by the client-side tracker; informational only.
	// example: pinch
	GestureType string `json:"gesture_type,omitempty" example:"pinch"`
	// Client-side confidence; informational only.
	// example: 0.95
	Confidence float64 `json:"confidence,omitempty" example:"0.95"`
	// Client timestamp, RFC 3339.
	Timestamp string `json:"timestamp,omitempty"`
}
