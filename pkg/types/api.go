package types

// ValidateRequest is the payload for POST /dna/validate.
type ValidateRequest struct {
	// Sequence to validate; case-insensitive, surrounding whitespace ignored.
	// example: ATGCatgc
	Sequence string `json:"sequence" example:"ATGCatgc"`
}

// ValidationReport is returned by POST /dna/validate. Invalid characters are
// reported, not rejected: the request still succeeds with Valid=false.
type ValidationReport struct {
	// Whether the sequence contains only A, T, G, C.
	// example: true
	Valid bool `json:"valid" example:"true"`
	// Length of the trimmed sequence (present when valid).
	// example: 8
	Length int `json:"length,omitempty" example:"8"`
	// GC percentage (present when valid). A pointer so an all-A/T sequence
	// still serializes its 0 rather than dropping the field.
	// example: 50
	GCContent *float64 `json:"gc_content,omitempty" example:"50"`
	// Watson-Crick complement (present when valid).
	// example: TACGTACG
	Complement string `json:"complement,omitempty" example:"TACGTACG"`
	// Human-readable problems (present when invalid).
	Errors []string `json:"errors,omitempty"`
	// The accepted alphabet (present when invalid).
	ValidBases []string `json:"valid_bases,omitempty"`
}

// BaseInfo is the static metadata returned by GET /dna/info/{base}.
type BaseInfo struct {
	// Full chemical name.
	// example: Adenine
	Name string `json:"name" example:"Adenine"`
	// Purine or Pyrimidine.
	// example: Purine
	Type string `json:"type" example:"Purine"`
	// Molecular formula.
	// example: C₅H₅N₅
	Formula string `json:"formula" example:"C₅H₅N₅"`
	// Complementary base name.
	// example: Thymine
	PairsWith string `json:"pairs_with" example:"Thymine"`
	// Number of hydrogen bonds to the paired base.
	// example: 2
	Bonds int `json:"bonds" example:"2"`
	// Suggested render color, hex RGB.
	// example: #ff6b6b
	Color string `json:"color" example:"#ff6b6b"`
	// One-sentence description.
	Description string `json:"description"`
}

// Transformations is the view-transform delta derived from a gesture. At most
// one of the rotation pair, zoom, or reset is populated; an empty object means
// the gesture carries no transform effect.
type Transformations struct {
	// Rotation around the X axis in degrees.
	// example: -45
	RotationX *float64 `json:"rotation_x,omitempty" example:"-45"`
	// Rotation around the Y axis in degrees.
	// example: 90
	RotationY *float64 `json:"rotation_y,omitempty" example:"90"`
	// Zoom level, clamped to [0.5, 3.0].
	// example: 1.5
	Zoom *float64 `json:"zoom,omitempty" example:"1.5"`
	// Reset the view to its initial transform.
	// example: true
	Reset bool `json:"reset,omitempty" example:"true"`
}

// GestureInfo is the classification of one gesture sample.
type GestureInfo struct {
	// One of pinch, point, open_hand, fist, unknown.
	// example: pinch
	Type string `json:"type" example:"pinch"`
	// Classifier confidence in [0,1].
	// example: 0.9
	Confidence float64 `json:"confidence" example:"0.9"`
	// Thumb-tip to index-tip distance (pinch only).
	// example: 0.03
	Distance *float64 `json:"distance,omitempty" example:"0.03"`
	// Index fingertip position (point only).
	Position []float64 `json:"position,omitempty"`
}

// GestureResult is returned by POST /gesture/process and carried by
// gesture_result / gesture_update events.
type GestureResult struct {
	Gesture         GestureInfo     `json:"gesture"`
	Transformations Transformations `json:"transformations"`
	// Server timestamp, RFC 3339.
	Timestamp string `json:"timestamp"`
}

// Envelope is the realtime message frame exchanged over /ws.
type Envelope struct {
	// One of config_update, dna_data, gesture_data, gesture_result, gesture_update.
	// example: config_update
	Type string `json:"type" example:"config_update"`
	// Event payload; absent for config_update frames.
	Data any `json:"data,omitempty"`
	// Current configuration; config_update frames only.
	Config *VisualizationConfig `json:"config,omitempty"`
	// Server timestamp, RFC 3339.
	Timestamp string `json:"timestamp,omitempty"`
}

// UpdateResponse acknowledges a successful POST /config.
type UpdateResponse struct {
	// example: success
	Status string `json:"status" example:"success"`
	// example: Configuration updated
	Message string `json:"message" example:"Configuration updated"`
}

// HealthResponse is returned by GET /healthz.
type HealthResponse struct {
	// example: healthy
	Status string `json:"status" example:"healthy"`
	// Server timestamp, RFC 3339.
	Timestamp string `json:"timestamp"`
	// Number of live viewer connections.
	// example: 3
	ActiveConnections int `json:"active_connections" example:"3"`
}

// Fact is one educational DNA fact.
type Fact struct {
	Title    string `json:"title"`
	Fact     string `json:"fact"`
	Category string `json:"category"`
}

// Component describes one molecular component of the double helix.
type Component struct {
	Description string `json:"description"`
	Function    string `json:"function"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: length must be between 1 and 100
	Error string `json:"error" example:"length must be between 1 and 100"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
