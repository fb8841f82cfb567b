package web

import "embed"

// AdminFS holds the admin shell served under /admin
//
//go:embed all:dist
var AdminFS embed.FS
