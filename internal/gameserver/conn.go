package gameserver

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"time"

	"github.com/rcc-emulator/server/internal/frame"
	"github.com/rcc-emulator/server/internal/login"
	"github.com/rcc-emulator/server/internal/service"
)

// readTimeout bounds each blocking read; on a timeout the loop simply
// reads again, so it is never fatal on its own (spec.md §4.6).
// Cancellation is handled separately, by closing the socket.
const readTimeout = 30 * time.Second

// Conn is one game-channel connection's state machine (spec.md §4.6).
type Conn struct {
	netConn      net.Conn
	r            *bufio.Reader
	loginHandler *login.Handler
	catalogue    []byte

	loggedIn bool
}

func newConn(netConn net.Conn, loginHandler *login.Handler, catalogue []byte) *Conn {
	return &Conn{
		netConn:      netConn,
		r:            bufio.NewReader(netConn),
		loginHandler: loginHandler,
		catalogue:    catalogue,
	}
}

// run drives the connection to completion: push the catalogue, then
// loop decoding and dispatching frames until a malformed frame, I/O
// error, or context cancellation closes the socket.
func (c *Conn) run(ctx context.Context) {
	defer c.netConn.Close()

	remote := c.netConn.RemoteAddr()
	slog.Info("connection accepted", "remote", remote)

	if _, err := c.netConn.Write(frame.Encode(c.catalogue)); err != nil {
		slog.Warn("failed to push initial catalogue", "remote", remote, "error", err)
		return
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			c.netConn.Close()
		case <-done:
		}
	}()

	for {
		c.netConn.SetReadDeadline(time.Now().Add(readTimeout))

		payload, err := frame.Decode(c.r)
		if err != nil {
			if isTimeout(err) {
				continue
			}
			if errors.Is(err, frame.ErrMalformedFrame) {
				slog.Warn("malformed frame, closing connection", "remote", remote, "error", err)
			} else if !errors.Is(err, io.EOF) {
				slog.Debug("connection read error", "remote", remote, "error", err)
			}
			return
		}

		reply, loggedIn, err := c.dispatch(ctx, payload)
		if err != nil {
			slog.Warn("dispatch error", "remote", remote, "error", err)
			continue
		}
		if loggedIn {
			c.loggedIn = true
		}
		if reply == nil {
			continue
		}
		if _, err := c.netConn.Write(frame.Encode(reply)); err != nil {
			slog.Debug("connection write error", "remote", remote, "error", err)
			return
		}
	}
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// dispatch implements spec.md §4.4: it applies the header-ambiguity
// workaround, reads ServiceID, and routes to the appropriate handler.
// It returns the reply payload (nil for no reply) and whether this
// dispatch completed a successful login.
func (c *Conn) dispatch(ctx context.Context, payload []byte) ([]byte, bool, error) {
	payload = splitHeader(payload)
	if len(payload) == 0 {
		return nil, false, nil
	}

	svc := service.ID(payload[0])

	switch svc {
	case service.Login:
		if len(payload) < 4 {
			return nil, false, nil
		}
		rpcID := uint16(payload[2]) | uint16(payload[3])<<8
		reply, ok, err := c.loginHandler.Handle(ctx, payload[4:], rpcID)
		if err != nil {
			return nil, false, err
		}
		return reply, ok, nil

	case service.Game:
		// FunctionID 0 is Subscribe; any value never produces a
		// reply (spec.md §4.4 step 3).
		if len(payload) >= 2 && payload[1] != 0 {
			slog.Warn("unknown game function", "functionID", payload[1])
		}
		return nil, false, nil

	case service.Cards:
		// The server is the sole producer; inbound frames are
		// ignored (spec.md §4.4 step 4).
		return nil, false, nil

	default:
		if !svc.Known() {
			slog.Warn("unknown service", "serviceID", payload[0])
		}
		if len(payload) < 4 {
			return nil, false, nil
		}
		rpcID := uint16(payload[2]) | uint16(payload[3])<<8
		return genericReply(rpcID), false, nil
	}
}
