// Package model holds the persisted record types shared by the
// identity store and its database backing (spec.md §3 "User record").
package model

import "time"

// UserState and Access enumerations are only partially observed
// upstream; these defaults are the only known-good values
// (spec.md §9).
const (
	UserStateMenu = 1
	AccessUser    = 0
)

// User is a persisted (source-type, source-id) -> player-id tuple,
// with secondary bookkeeping fields. Only PlayerID, UserState, and
// AccessLevel are ever surfaced into the wire protocol; the rest is
// ambient bookkeeping (spec.md §3).
type User struct {
	PlayerID   uint32
	SourceType string
	SourceID   string

	AccessTokenHash string
	UserState       uint8
	AccessLevel     uint8

	CreatedAt time.Time
	LastLogin time.Time

	// DisplayName defaults to "Player{PlayerID}" on creation
	// (spec.md §4.7).
	DisplayName string

	// RequestCount is incremented on every resolved login and
	// surfaced only through the debug HTTP endpoint (SPEC_FULL.md §3).
	RequestCount int64
}
