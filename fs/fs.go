package appfs

import "embed"

// FS holds embedded app assets (database migrations).
//go:embed migrations
var FS embed.FS
