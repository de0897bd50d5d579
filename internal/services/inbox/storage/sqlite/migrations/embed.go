package migrations

import "embed"

// FS contains embedded SQLite migrations for inbox storage.
//
//go:embed *.sql
var FS embed.FS
