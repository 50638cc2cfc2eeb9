// Package migrations holds the versioned schema of the kiosk database.
//
// The SQL file bootstraps the tables; the Go migrations rewrite legacy
// document rows in place. goose applies each version exactly once, in
// ascending order, inside its own transaction, so a transform that fails
// rolls back its whole version and is retried on the next open.
//
// Every transform checks "is the field absent or falsy" before writing a
// default, which keeps re-runs against already-upgraded rows a no-op.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
