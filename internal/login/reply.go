package login

import (
	"github.com/rcc-emulator/server/internal/service"
	"github.com/rcc-emulator/server/internal/wire"
)

// StatusOK and StatusFail are the login reply status byte values
// (spec.md §3, §4.5).
const (
	StatusOK   = 0
	StatusFail = 255
)

// EncodeSuccess writes the success reply: header
// {ServiceID=100, FunctionID=0, RPCID, Status=0}, then
// {PlayerID u32, UserState u8, AccessLevel u8} (spec.md §4.5).
func EncodeSuccess(w *wire.Writer, rpcID uint16, playerID uint32, userState, accessLevel uint8) {
	w.WriteU8(uint8(service.Login))
	w.WriteU8(0)
	w.WriteU16(rpcID)
	w.WriteU8(StatusOK)
	w.WriteU32(playerID)
	w.WriteU8(userState)
	w.WriteU8(accessLevel)
}

// EncodeFailure writes the failure reply: header with status byte 255
// followed by a length-prefixed UTF-8 error string. Per spec.md §4.2
// this string uses the 4-byte little-endian length shape, not VarInt.
func EncodeFailure(w *wire.Writer, rpcID uint16, message string) {
	w.WriteU8(uint8(service.Login))
	w.WriteU8(0)
	w.WriteU16(rpcID)
	w.WriteU8(StatusFail)
	w.WriteStringU32Len(message)
}
