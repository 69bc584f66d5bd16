package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/topoclimb/topoclimb-gateway/registry"
)

const (
	// wsKeepAliveInterval is how often the gateway pings connected clients.
	wsKeepAliveInterval = 10 * time.Second
	// wsReadDeadline is the maximum time to wait for a pong before considering the connection dead.
	wsReadDeadline = 90 * time.Second
)

var upgrader = websocket.Upgrader{
	HandshakeTimeout: 10 * time.Second,
	ReadBufferSize:   1024,
	WriteBufferSize:  1024,
	// Event stream carries no credentials and mutations need admin auth, so
	// any origin may listen.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// EventsHub pushes endpoint-set changes to connected WebSocket clients and
// tracks the connections so they can be closed during graceful shutdown.
// Create one in main and pass it to the handler.
type EventsHub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
	done  chan struct{} // closed on shutdown
}

func NewEventsHub() *EventsHub {
	return &EventsHub{
		conns: make(map[*websocket.Conn]struct{}),
		done:  make(chan struct{}),
	}
}

func (h *EventsHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	h.mu.Unlock()
}

func (h *EventsHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, conn)
	h.mu.Unlock()
}

// Watch consumes registry snapshots until the channel closes, invoking
// onChange for each one and pushing an endpoints_changed event to every
// connected client. Run it in a goroutine next to the subscription.
func (h *EventsHub) Watch(ch <-chan []registry.Endpoint, onChange func()) {
	for endpoints := range ch {
		if onChange != nil {
			onChange()
		}

		sanitized := make([]endpointResponse, len(endpoints))
		for i, ep := range endpoints {
			sanitized[i] = toEndpointResponse(ep)
		}
		payload, err := json.Marshal(gin.H{
			"type":      "endpoints_changed",
			"endpoints": sanitized,
		})
		if err != nil {
			continue
		}
		h.broadcast(payload)
	}
}

func (h *EventsHub) broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			slog.Debug("ws: event write error", "error", err)
		}
	}
}

// Shutdown closes all active WebSocket connections and signals handlers to exit.
func (h *EventsHub) Shutdown() {
	close(h.done)
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second),
		)
		_ = conn.Close()
	}
	h.conns = make(map[*websocket.Conn]struct{})
}

// EventsHandler returns a gin handler that manages WebSocket connections with
// lifecycle tracking via the hub. Clients receive endpoints_changed events and
// periodic pings; they are not expected to send anything.
func EventsHandler(hub *EventsHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		hub.add(conn)
		defer func() {
			hub.remove(conn)
			_ = conn.Close()
		}()

		ticker := time.NewTicker(wsKeepAliveInterval)
		defer ticker.Stop()

		_ = conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
			return nil
		})

		readErr := make(chan error, 1)
		go func() {
			for {
				_, _, err := conn.ReadMessage()
				if err != nil {
					readErr <- err
					return
				}
			}
		}()

		for {
			select {
			case <-hub.done:
				return
			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second)); err != nil {
					slog.Debug("ws: keepalive write error", "error", err)
					return
				}
			case err := <-readErr:
				if websocket.IsUnexpectedCloseError(err,
					websocket.CloseGoingAway,
					websocket.CloseNormalClosure,
					websocket.CloseNoStatusReceived,
				) {
					slog.Debug("ws: unexpected close", "error", err)
				}
				return
			}
		}
	}
}
