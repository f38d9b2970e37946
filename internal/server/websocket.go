package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/gogevgelija/ggadmin/internal/adminapi"
	"github.com/gogevgelija/ggadmin/internal/logging"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Queued results per subscriber before the connection is dropped
	sendBuffer = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The demo backend serves trusted LAN clients only
	CheckOrigin: func(r *http.Request) bool { return true },
}

// subscriber is one connected events client. The writer pump in HandleEvents
// is the connection's only writer; everything it sends arrives over the send
// channel, which is closed under the hub lock exactly once, in drop.
type subscriber struct {
	conn       *websocket.Conn
	send       chan *adminapi.ValidationResult
	remoteAddr string
}

// Hub fans validation results out to every connected WebSocket subscriber.
type Hub struct {
	mu          sync.Mutex
	subscribers map[*subscriber]struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subscribers: make(map[*subscriber]struct{})}
}

// HandleEvents upgrades the request and keeps the connection subscribed
// until the peer goes away.
func (h *Hub) HandleEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}
	logging.LogConnection(r.RemoteAddr, "events_subscribed")

	sub := &subscriber{
		conn:       conn,
		send:       make(chan *adminapi.ValidationResult, sendBuffer),
		remoteAddr: r.RemoteAddr,
	}
	h.mu.Lock()
	h.subscribers[sub] = struct{}{}
	h.mu.Unlock()

	// Read loop: we never expect payloads from subscribers, but reading is
	// what surfaces close frames and keeps pong handling alive.
	go func() {
		defer h.drop(sub)

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(pongWait))
		})

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// Writer pump: results and pings share the one goroutine allowed to
	// write to the connection.
	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		defer h.drop(sub)

		for {
			select {
			case result, ok := <-sub.send:
				if !ok {
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(result); err != nil {
					return
				}
			case <-ticker.C:
				_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()
}

// Broadcast queues a validation result for every subscriber. A subscriber
// whose queue is full is dropped rather than blocking the submit path.
func (h *Hub) Broadcast(result *adminapi.ValidationResult) {
	var full []*subscriber

	h.mu.Lock()
	for sub := range h.subscribers {
		select {
		case sub.send <- result:
		default:
			full = append(full, sub)
		}
	}
	h.mu.Unlock()

	for _, sub := range full {
		h.drop(sub)
	}
	logging.LogValidationEvent("broadcast", result.FormID, len(result.Errors))
}

// Close disconnects every subscriber.
func (h *Hub) Close() {
	h.mu.Lock()
	for sub := range h.subscribers {
		delete(h.subscribers, sub)
		close(sub.send)
		_ = sub.conn.Close()
	}
	h.mu.Unlock()
}

// drop removes and closes one subscriber. Safe to call twice.
func (h *Hub) drop(sub *subscriber) {
	h.mu.Lock()
	_, present := h.subscribers[sub]
	if present {
		delete(h.subscribers, sub)
		close(sub.send)
	}
	h.mu.Unlock()

	if present {
		_ = sub.conn.Close()
		logging.LogConnection(sub.remoteAddr, "events_unsubscribed")
	}
}
