package hub

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Defaults for connection tuning; overridable per server via Options.
const (
	DefaultSendBuffer   = 32
	DefaultWriteTimeout = 5 * time.Second
)

// Options tunes per-connection buffering and write deadlines.
type Options struct {
	SendBuffer   int
	WriteTimeout time.Duration
}

func (o Options) withDefaults() Options {
	if o.SendBuffer <= 0 {
		o.SendBuffer = DefaultSendBuffer
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = DefaultWriteTimeout
	}
	return o
}

// Conn adapts one gorilla websocket to the Sink interface. Outbound frames
// pass through a buffered channel drained by a single writer goroutine, so a
// broadcast never waits on this viewer's socket. Each write carries a
// deadline; a failed or timed-out write tears the connection down and
// unregisters it from the hub.
type Conn struct {
	id      string
	ws      *websocket.Conn
	out     chan []byte
	opt     Options
	onClose func(id string)

	mu     sync.Mutex
	closed bool
}

// NewConn wraps an upgraded websocket and starts its writer. The connection
// is not registered with any hub; the caller registers it after delivering
// the connect snapshot. onClose runs once when the writer exits and should
// unregister the connection (it may be nil).
func NewConn(ws *websocket.Conn, opt Options, onClose func(id string)) *Conn {
	c := &Conn{
		id:      uuid.NewString(),
		ws:      ws,
		out:     make(chan []byte, opt.withDefaults().SendBuffer),
		opt:     opt.withDefaults(),
		onClose: onClose,
	}
	go c.writeLoop()
	return c
}

func (c *Conn) ID() string { return c.id }

// Enqueue queues a frame for the writer. Returns false when the connection
// is closed or its buffer is full.
func (c *Conn) Enqueue(payload []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.out <- payload:
		return true
	default:
		return false
	}
}

// Close marks the connection closed and stops the writer. Idempotent.
func (c *Conn) Close() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.out)
	}
	c.mu.Unlock()
}

// writeLoop drains the outbound buffer onto the socket. It exits when the
// channel is closed or a write fails, then runs onClose and closes the
// socket.
func (c *Conn) writeLoop() {
	for payload := range c.out {
		_ = c.ws.SetWriteDeadline(time.Now().Add(c.opt.WriteTimeout))
		if err := c.ws.WriteMessage(websocket.TextMessage, payload); err != nil {
			sendFailuresTotal.Inc()
			break
		}
	}
	if c.onClose != nil {
		c.onClose(c.id)
	}
	c.Close()
	deadline := time.Now().Add(c.opt.WriteTimeout)
	_ = c.ws.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
	_ = c.ws.Close()
}
