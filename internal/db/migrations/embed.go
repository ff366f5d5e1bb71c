// Package migrations embeds the goose SQL migrations for the identity
// store's sqlite database (spec.md §6).
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
