// Package db embeds the goose migrations so the migrator binary does not depend
// on the working directory.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
