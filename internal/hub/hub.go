// Package hub maintains the registry of live viewer connections and fans
// state-change events out to all of them. Delivery is best effort: a viewer
// that cannot keep up or whose socket fails is pruned, never retried, and
// never blocks delivery to the others.
package hub

import "sync"

// Sink is one viewer's outbound channel. Implementations must make Enqueue
// non-blocking and Close idempotent.
type Sink interface {
	ID() string
	// Enqueue hands the payload to the sink without blocking. It returns
	// false when the sink is closed or its buffer is full, which marks the
	// sink as failed.
	Enqueue(payload []byte) bool
	Close()
}

// Hub is the connection registry. All registry mutation goes through its
// mutex; broadcast iterates an immutable snapshot and applies removals only
// after the pass completes.
type Hub struct {
	mu    sync.Mutex
	sinks map[string]Sink
}

func New() *Hub {
	return &Hub{sinks: make(map[string]Sink)}
}

// Add registers a sink. A sink reusing an existing ID replaces it.
func (h *Hub) Add(s Sink) {
	h.mu.Lock()
	h.sinks[s.ID()] = s
	// Gauge updates stay inside the lock so racing Add/Remove calls cannot
	// publish a stale count.
	connectionsGauge.Set(float64(len(h.sinks)))
	h.mu.Unlock()
}

// Remove unregisters a sink by ID. Removing an unknown ID is a no-op, so the
// prune paths (failed enqueue, failed write, explicit disconnect) can race
// without coordination.
func (h *Hub) Remove(id string) {
	h.mu.Lock()
	delete(h.sinks, id)
	connectionsGauge.Set(float64(len(h.sinks)))
	h.mu.Unlock()
}

// Len returns the number of registered sinks.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sinks)
}

// Broadcast enqueues payload on every registered sink, one attempt per sink.
// Sinks that reject the payload are closed and removed after the pass; the
// failure never propagates to the caller.
func (h *Hub) Broadcast(payload []byte) {
	h.mu.Lock()
	snapshot := make([]Sink, 0, len(h.sinks))
	for _, s := range h.sinks {
		snapshot = append(snapshot, s)
	}
	h.mu.Unlock()

	var failed []Sink
	for _, s := range snapshot {
		if !s.Enqueue(payload) {
			failed = append(failed, s)
		}
	}
	for _, s := range failed {
		s.Close()
		h.Remove(s.ID())
		sendFailuresTotal.Inc()
	}
	broadcastsTotal.Inc()
}
