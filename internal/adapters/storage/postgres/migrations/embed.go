package migrations

import "embed"

// FS contains the embedded PostgreSQL catalog schema.
//
//go:embed *.sql
var FS embed.FS
