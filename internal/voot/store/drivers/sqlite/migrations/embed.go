package migrations

import "embed"

// Migrations holds the golang-migrate up/down files for the VOOT schema.
//
//go:embed *.sql
var Migrations embed.FS
