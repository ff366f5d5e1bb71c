package login

import (
	"context"
	"database/sql"
	"encoding/binary"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/rcc-emulator/server/internal/db"
	"github.com/rcc-emulator/server/internal/identitystore"
	"github.com/rcc-emulator/server/internal/service"
	"github.com/rcc-emulator/server/internal/wire"
)

func loginPayload(accountID uint64, token []byte) []byte {
	payload := make([]byte, accountIDOffset+8)
	payload[1] = ExpectedProtocolVersion
	binary.LittleEndian.PutUint64(payload[accountIDOffset:], accountID)
	return append(payload, token...)
}

func TestParseRequestExactly14Bytes(t *testing.T) {
	payload := loginPayload(76561198139908495, nil)
	require.Len(t, payload, minPayloadLength)

	req := ParseRequest(payload)
	require.False(t, req.Fallback)
	require.Equal(t, byte(ExpectedProtocolVersion), req.ProtocolVersion)
	require.Equal(t, "76561198139908495", req.SourceID)
	// sha256 of the empty token, not an empty string — ParseRequest
	// always hashes, even when the client sends no token bytes.
	require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", req.TokenHash)
}

func TestParseRequestShortPayloadFallsBack(t *testing.T) {
	req := ParseRequest([]byte{1, 2, 3})
	require.True(t, req.Fallback)
	require.Equal(t, "Steam", req.SourceType)
	require.NotEmpty(t, req.SourceID)
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	path := filepath.Join(t.TempDir(), "identity.db")
	require.NoError(t, db.RunMigrations(context.Background(), path))

	conn, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewHandler(identitystore.New(conn))
}

// TestFirstLoginScenario reproduces spec.md §8 scenario 1: the reply
// payload is `64 00 RR RR 00 PP PP PP PP 01 00` with RR the echoed
// RPCID and PP the newly assigned player-id.
func TestFirstLoginScenario(t *testing.T) {
	h := newTestHandler(t)
	payload := loginPayload(76561198139908495, nil)

	reply, ok, err := h.Handle(context.Background(), payload, 0x1234)
	require.NoError(t, err)
	require.True(t, ok)

	r := wire.NewReader(reply)
	svc, err := r.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(service.Login), svc)

	fn, err := r.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(0), fn)

	rpcID, err := r.ReadU16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), rpcID)

	status, err := r.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(StatusOK), status)

	playerID, err := r.ReadU32()
	require.NoError(t, err)
	require.Equal(t, uint32(1), playerID)

	userState, err := r.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(1), userState)

	accessLevel, err := r.ReadU8()
	require.NoError(t, err)
	require.Equal(t, uint8(0), accessLevel)

	require.Equal(t, 0, r.Remaining())
}

// TestRepeatLoginScenario reproduces spec.md §8 scenario 2: the same
// account on a new connection gets back the identical PlayerID.
func TestRepeatLoginScenario(t *testing.T) {
	h := newTestHandler(t)
	payload := loginPayload(76561198139908495, nil)

	first, _, err := h.Handle(context.Background(), payload, 1)
	require.NoError(t, err)

	second, _, err := h.Handle(context.Background(), payload, 2)
	require.NoError(t, err)

	r1 := wire.NewReader(first)
	r1.ReadU8()
	r1.ReadU8()
	r1.ReadU16()
	r1.ReadU8()
	id1, err := r1.ReadU32()
	require.NoError(t, err)

	r2 := wire.NewReader(second)
	r2.ReadU8()
	r2.ReadU8()
	r2.ReadU16()
	r2.ReadU8()
	id2, err := r2.ReadU32()
	require.NoError(t, err)

	require.Equal(t, id1, id2)
}
