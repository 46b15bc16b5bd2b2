package migrations

import "embed"

// FS holds the goose migrations applied to Postgres.
//
//go:embed *.sql
var FS embed.FS
