// Package web holds the static pages served by the downloader.
package web

import (
	"embed"
)

//go:embed pages
var Pages embed.FS
