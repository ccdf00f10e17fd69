// Package viz owns the single shared visualization state: the current
// configuration and the current generated sequence. Every mutation and every
// broadcast is serialized through one mutex, so viewers observe operations in
// the order they were applied and never see a half-updated state. Broadcasts
// are buffer enqueues, not socket writes, so holding the lock across a
// fan-out never waits on a slow viewer.
package viz

import (
	"encoding/json"
	"sync"
	"time"

	"helixd/internal/dna"
	"helixd/internal/gesture"
	"helixd/internal/hub"
	"helixd/pkg/types"
)

// Event type names on the realtime channel.
const (
	EventConfigUpdate  = "config_update"
	EventDNAData       = "dna_data"
	EventGestureData   = "gesture_data"
	EventGestureResult = "gesture_result"
	EventGestureUpdate = "gesture_update"
)

// State is the process-wide visualization state. Construct with New; the
// zero value is not usable.
type State struct {
	mu  sync.Mutex
	cfg types.VisualizationConfig
	seq *types.Sequence
	hub *hub.Hub
}

// New returns a State with the default configuration, no sequence, and the
// given hub as its broadcast target.
func New(h *hub.Hub) *State {
	return &State{cfg: types.DefaultConfig(), hub: h}
}

// Config returns the current configuration.
func (s *State) Config() types.VisualizationConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// Sequence returns the current sequence, or nil if none has been generated.
func (s *State) Sequence() *types.Sequence {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}

// ActiveConnections reports the number of live viewer connections.
func (s *State) ActiveConnections() int { return s.hub.Len() }

// GenerateRandom creates a random sequence of the given length, stores it as
// the current sequence (single slot, no history), and broadcasts a dna_data
// event. Lengths outside [dna.MinLength, dna.MaxLength] are rejected with
// ErrInvalidLength before any state changes.
func (s *State) GenerateRandom(length int) (types.Sequence, error) {
	if length < dna.MinLength || length > dna.MaxLength {
		return types.Sequence{}, dna.ErrInvalidLength(length)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	seq := dna.Build(dna.Random(length), dna.Geometry{
		HelixRadius:      s.cfg.HelixRadius,
		BasePairDistance: s.cfg.BasePairDistance,
	})
	s.seq = &seq
	s.broadcastLocked(types.Envelope{Type: EventDNAData, Data: seq, Timestamp: stamp()})
	return seq, nil
}

// ReplaceConfig replaces the whole configuration (last write wins, no merge)
// and broadcasts a config_update event.
func (s *State) ReplaceConfig(cfg types.VisualizationConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.broadcastLocked(types.Envelope{Type: EventConfigUpdate, Config: &cfg, Timestamp: stamp()})
}

// ProcessGesture classifies the sample, derives its transform delta, and
// broadcasts a gesture_update carrying both. Gestures never mutate the
// stored config or sequence; transforms are advisory deltas viewers apply
// locally. A malformed sample (wrong landmark count) degrades to an unknown
// classification instead of failing.
func (s *State) ProcessGesture(sample types.GestureSample) types.GestureResult {
	g := gesture.Classify(sample.Landmarks)
	result := types.GestureResult{
		Gesture:         gestureInfo(g),
		Transformations: transformations(gesture.Map(g)),
		Timestamp:       stamp(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.broadcastLocked(types.Envelope{Type: EventGestureUpdate, Data: result, Timestamp: result.Timestamp})
	return result
}

// AttachViewer delivers the connect snapshot to the sink and registers it
// with the hub, all under the state lock: the viewer's first two events are
// the current config and (when present) the current sequence, and no update
// can slip between snapshot and registration.
func (s *State) AttachViewer(sink hub.Sink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.cfg
	sink.Enqueue(marshal(types.Envelope{Type: EventConfigUpdate, Config: &cfg, Timestamp: stamp()}))
	if s.seq != nil {
		sink.Enqueue(marshal(types.Envelope{Type: EventDNAData, Data: s.seq, Timestamp: stamp()}))
	}
	s.hub.Add(sink)
}

// DetachViewer removes a viewer on explicit disconnect. Failed sends prune
// opportunistically through the hub, so detaching an already-pruned ID is a
// no-op.
func (s *State) DetachViewer(id string) { s.hub.Remove(id) }

func (s *State) broadcastLocked(env types.Envelope) {
	s.hub.Broadcast(marshal(env))
}

func marshal(env types.Envelope) []byte {
	b, _ := json.Marshal(env)
	return b
}

func stamp() string { return time.Now().UTC().Format(time.RFC3339Nano) }
