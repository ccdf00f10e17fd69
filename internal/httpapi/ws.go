package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"helixd/internal/hub"
	"helixd/internal/viz"
	"helixd/pkg/types"
)

var upgrader = websocket.Upgrader{
	// Browser viewers connect cross-origin during development; origin policy
	// is handled by the CORS configuration, not the upgrader.
	CheckOrigin: func(*http.Request) bool { return true },
}

// inboundFrame is the client→server half of the realtime protocol.
type inboundFrame struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// serveWS upgrades the request, delivers the connect snapshot (current
// config, then current sequence if one exists), registers the viewer, and
// then pumps inbound frames until the peer goes away or the server shuts
// down. Outbound frames flow through the hub connection's writer; this
// handler only reads.
func serveWS(svc Service, w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		return
	}
	ws.SetReadLimit(maxBodyBytes)

	conn := hub.NewConn(ws, wsOptions, svc.DetachViewer)
	svc.AttachViewer(conn)

	ctx, cancel := joinContexts(serverBaseCtx, r.Context())
	defer cancel()
	go func() {
		<-ctx.Done()
		conn.Close()
		_ = ws.Close()
	}()

	logInfo(r, func(e logEvent) {
		e.Str("conn_id", conn.ID()).Int("active", svc.ActiveConnections()).Msg("viewer connected")
	})

	for {
		_, payload, err := ws.ReadMessage()
		if err != nil {
			break
		}
		var frame inboundFrame
		if err := json.Unmarshal(payload, &frame); err != nil {
			// A malformed frame is this viewer's problem only.
			continue
		}
		handleFrame(svc, conn, frame)
	}

	svc.DetachViewer(conn.ID())
	conn.Close()
	logInfo(r, func(e logEvent) {
		e.Str("conn_id", conn.ID()).Int("active", svc.ActiveConnections()).Msg("viewer disconnected")
	})
}

// handleFrame dispatches one inbound frame. gesture_data runs the same
// processing as the REST gesture endpoint (including the gesture_update
// broadcast) and additionally replies gesture_result to the sender;
// config_update replaces the configuration and broadcasts to everyone.
func handleFrame(svc Service, conn *hub.Conn, frame inboundFrame) {
	switch frame.Type {
	case viz.EventGestureData:
		var sample types.GestureSample
		if err := json.Unmarshal(frame.Data, &sample); err != nil {
			return
		}
		result := svc.ProcessGesture(sample)
		reply, _ := json.Marshal(types.Envelope{
			Type:      viz.EventGestureResult,
			Data:      result,
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		})
		conn.Enqueue(reply)
	case viz.EventConfigUpdate:
		var cfg types.VisualizationConfig
		if err := json.Unmarshal(frame.Data, &cfg); err != nil {
			return
		}
		svc.ReplaceConfig(cfg)
	}
}
