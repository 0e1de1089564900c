// Package appfs exposes build-time assets (database migrations) as an
// embedded filesystem so binaries stay self-contained.
package appfs

import "embed"

//go:embed migrations
var FS embed.FS
