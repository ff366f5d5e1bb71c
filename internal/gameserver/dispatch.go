package gameserver

import (
	"github.com/rcc-emulator/server/internal/service"
	"github.com/rcc-emulator/server/internal/wire"
)

// splitHeader applies the header-ambiguity workaround (spec.md §4.4):
// some clients prepend two extra bytes before ServiceID. It inspects
// bytes [0] and [2]: if [0] is a known service ID, it's used as-is;
// otherwise the cursor advances by two bytes — whether because [2] is
// the known one, or, failing that, as the documented fallback.
func splitHeader(payload []byte) []byte {
	if len(payload) < 3 {
		return payload
	}
	b0 := service.ID(payload[0])
	if b0.Known() {
		return payload
	}
	b2 := service.ID(payload[2])
	if b2.Known() {
		return payload[2:]
	}
	// Neither offset maps to a known service; §4.4 still says advance
	// by two rather than trust [0].
	return payload[2:]
}

// genericReply builds a generic success reply — RPCID · status 0 — no
// payload (spec.md §4.4 step 5).
func genericReply(rpcID uint16) []byte {
	w := wire.Get()
	defer w.Put()
	w.WriteU16(rpcID)
	w.WriteU8(0)
	out := make([]byte, w.Len())
	copy(out, w.Bytes())
	return out
}
