// Package migrations embeds the SQL schema so the migrate command works
// from any working directory.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
