// Package httpapi serves the auxiliary HTTP/WebSocket channel
// (spec.md §6): a small JSON debug surface plus a chat WebSocket
// endpoint that echoes and broadcasts every message it receives. It coexists with the core on the
// same process but is not part of the binary game protocol.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/rcc-emulator/server/internal/gameserver"
	"github.com/rcc-emulator/server/internal/identitystore"
	"github.com/rcc-emulator/server/internal/wire"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server exposes the debug REST surface and the chat WebSocket.
type Server struct {
	host  string
	port  int
	store *identitystore.Store
	game  *gameserver.Server

	hub *hub
}

// NewServer creates an httpapi Server.
func NewServer(host string, port int, store *identitystore.Store, game *gameserver.Server) *Server {
	return &Server{host: host, port: port, store: store, game: game, hub: newHub()}
}

// Run builds the route table and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/debug/users", s.handleDebugUsers).Methods(http.MethodGet)
	r.HandleFunc("/debug/tcp_clients", s.handleDebugTCPClients).Methods(http.MethodGet)
	r.HandleFunc("/debug/card_hash/{id}", s.handleDebugCardHash).Methods(http.MethodGet)
	r.HandleFunc("/websocket", s.handleWebSocket)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		<-ctx.Done()
		srv.Close()
	}()

	slog.Info("http server started", "address", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleDebugUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.store.All(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, users)
}

func (s *Server) handleDebugTCPClients(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]int{"connected": s.game.ClientCount()})
}

func (s *Server) handleDebugCardHash(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	writeJSON(w, map[string]any{"id": id, "crc32": wire.CRC32Key(id)})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	s.hub.serve(conn)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
