package login

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rcc-emulator/server/internal/identitystore"
	"github.com/rcc-emulator/server/internal/wire"
)

// Handler resolves login requests against an identity store and
// produces the reply bytes described in spec.md §4.5.
type Handler struct {
	store *identitystore.Store
}

// NewHandler creates a login Handler over store.
func NewHandler(store *identitystore.Store) *Handler {
	return &Handler{store: store}
}

// Handle parses payload (the bytes after ServiceID/FunctionID/RPCID),
// resolves the identity, and returns the encoded reply. The returned
// bool reports whether the reply was a success (status 0) — the
// connection loop uses this to set loggedIn=true (spec.md §4.6).
//
// A resolvable-but-malformed payload still returns a success reply
// against a fallback identity (spec.md §7 LoginParseFailure); only an
// identity-store failure produces the status-255 failure reply
// (spec.md §7 IdentityStoreFailure).
func (h *Handler) Handle(ctx context.Context, payload []byte, rpcID uint16) ([]byte, bool, error) {
	req := ParseRequest(payload)

	if !req.Fallback && req.ProtocolVersion != ExpectedProtocolVersion {
		slog.Warn("unexpected protocol version", "got", req.ProtocolVersion, "expected", ExpectedProtocolVersion)
	}
	if req.Fallback {
		slog.Warn("login payload too short, using fallback identity", "sourceID", req.SourceID)
	}

	user, err := h.store.GetOrCreate(ctx, req.SourceType, req.SourceID, req.TokenHash)
	if err != nil {
		slog.Error("identity store failure during login", "error", err, "sourceID", req.SourceID)
		w := wire.Get()
		defer w.Put()
		EncodeFailure(w, rpcID, fmt.Sprintf("identity store error: %v", err))
		out := make([]byte, w.Len())
		copy(out, w.Bytes())
		return out, false, nil
	}

	w := wire.Get()
	defer w.Put()
	EncodeSuccess(w, rpcID, user.PlayerID, user.UserState, user.AccessLevel)
	out := make([]byte, w.Len())
	copy(out, w.Bytes())
	return out, true, nil
}
