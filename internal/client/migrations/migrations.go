// Package migrations embeds the goose migrations of the local receipts
// database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
