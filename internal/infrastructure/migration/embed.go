package migration

import "embed"

// scriptsFS holds one goose migration tree per dialect: scripts/mysql and scripts/sqlite.
//
//go:embed scripts
var scriptsFS embed.FS
