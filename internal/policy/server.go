// Package policy serves the cross-domain policy channel (spec.md §6):
// on every accept it writes a policy document and a NUL terminator,
// then closes the connection.
package policy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
)

// Document is the cross-domain policy XML written to every connection.
// It grants every port to any origin, matching the
// permissive defaults of the Flash-era cross-domain policy format this
// channel exists to serve.
const Document = `<?xml version="1.0"?>
<!DOCTYPE cross-domain-policy SYSTEM "http://www.adobe.com/xml/dtds/cross-domain-policy.dtd">
<cross-domain-policy>
  <allow-access-from domain="*" to-ports="*" />
</cross-domain-policy>
`

// Server accepts connections and replies with Document once per
// connection before closing.
type Server struct {
	host string
	port int
}

// NewServer creates a policy Server bound to host:port.
func NewServer(host string, port int) *Server {
	return &Server{host: host, port: port}
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
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	slog.Info("policy server started", "address", ln.Addr())
	payload := append([]byte(Document), 0)

	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			slog.Error("policy accept failed", "error", err)
			continue
		}
		go func() {
			defer conn.Close()
			if _, err := conn.Write(payload); err != nil {
				slog.Debug("policy write failed", "remote", conn.RemoteAddr(), "error", err)
			}
		}()
	}
}
