// Package db embeds the goose SQL migrations so binaries can migrate
// without shipping the migration files separately.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
