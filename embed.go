// Package safescout exposes embedded assets shared by binaries and tests.
package safescout

import "embed"

// Migrations holds the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
