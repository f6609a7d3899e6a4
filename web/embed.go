package web

import "embed"

// StaticFS embeds the dashboard page served at /.
//
//go:embed index.html
var StaticFS embed.FS
