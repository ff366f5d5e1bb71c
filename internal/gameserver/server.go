// Package gameserver runs the length-prefixed TCP game channel: it
// accepts connections, pushes the initial card catalogue, and drives
// each connection's frame loop (spec.md §4.6).
package gameserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/rcc-emulator/server/internal/card"
	"github.com/rcc-emulator/server/internal/login"
)

// Server accepts connections on the game TCP port.
type Server struct {
	host        string
	port        int
	loginHandler *login.Handler
	catalogue   []byte

	mu       sync.Mutex
	listener net.Listener
	clients  map[*Conn]struct{}
}

// NewServer creates a Server. cards are encoded once into the
// catalogue body that every connection frames and pushes on accept
// (spec.md §4.3, §4.6).
func NewServer(host string, port int, loginHandler *login.Handler, cards []card.Card) *Server {
	return &Server{
		host:         host,
		port:         port,
		loginHandler: loginHandler,
		catalogue:    card.EncodeCatalogue(cards),
		clients:      make(map[*Conn]struct{}),
	}
}

// Addr returns the listener's bound address, or nil before Run.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Run listens on host:port and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on an already-bound listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	var wg sync.WaitGroup
	slog.Info("game server started", "address", ln.Addr())
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				break
			}
			slog.Error("accept failed", "error", err)
			continue
		}
		c := newConn(conn, s.loginHandler, s.catalogue)
		s.track(c)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer s.untrack(c)
			c.run(ctx)
		}()
	}
	wg.Wait()
	return nil
}

func (s *Server) track(c *Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients[c] = struct{}{}
}

func (s *Server) untrack(c *Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, c)
}

// ClientCount returns the number of currently tracked connections,
// surfaced by the debug HTTP endpoint (SPEC_FULL.md §4.12).
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}
