// Package migrations embeds the goose SQL migrations for the people store.
package migrations

import "embed"

// FS contains the SQL migration files, applied in order by goose.
//
//go:embed *.sql
var FS embed.FS
