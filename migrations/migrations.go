// Package migrations embeds the SQL migration files so the server
// binary can apply its own schema with goose, without shipping the
// migration directory alongside it.
package migrations

import "embed"

// FS holds the embedded goose migration files.
//
//go:embed *.sql
var FS embed.FS
