// Package migrations embeds the result store schema, one goose directory
// per dialect.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
