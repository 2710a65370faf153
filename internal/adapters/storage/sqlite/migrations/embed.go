package migrations

import "embed"

// FS contains the embedded SQLite catalog schema.
//
//go:embed *.sql
var FS embed.FS
