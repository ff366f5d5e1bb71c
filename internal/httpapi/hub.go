package httpapi

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// pingInterval keeps idle connections from being reaped by
// intermediate proxies (grounded on the teacher pack's websocket
// write-pump pattern).
const pingInterval = 30 * time.Second

// hub tracks connected WebSocket clients and broadcasts every message
// it receives to every other client, echoing it back to the sender as
// well (spec.md §6). Messages are relayed as-is; their content and any
// tag in it are not inspected or filtered.
type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte
}

func newHub() *hub {
	return &hub{clients: make(map[*websocket.Conn]chan []byte)}
}

func (h *hub) serve(conn *websocket.Conn) {
	send := make(chan []byte, 8)
	h.mu.Lock()
	h.clients[conn] = send
	h.mu.Unlock()

	done := make(chan struct{})
	go h.writePump(conn, send, done)
	h.readPump(conn)

	close(done)
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

func (h *hub) readPump(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		h.broadcast(data)
	}
}

func (h *hub) writePump(conn *websocket.Conn, send chan []byte, done chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// broadcast fans msg out to every connected client, including the
// sender (echo).
func (h *hub) broadcast(msg []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn, send := range h.clients {
		select {
		case send <- msg:
		default:
			slog.Warn("websocket client send buffer full, dropping message", "remote", conn.RemoteAddr())
		}
	}
}
