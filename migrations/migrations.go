// Package migrations embeds the versioned SQL schema for the sqlite provider.
package migrations

import "embed"

//go:embed sqlite/*.sql
var FS embed.FS
