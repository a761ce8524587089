// Package migrations contains embedded SQLite migrations for mapping storage.
package migrations

import "embed"

// FS contains embedded SQLite migrations for mapping storage.
//
//go:embed *.sql
var FS embed.FS
