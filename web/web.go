// Package web embeds the landing page served at the site root.
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html static
var files embed.FS

// IndexHTML returns the landing page.
func IndexHTML() []byte {
	page, err := files.ReadFile("index.html")
	if err != nil {
		panic(err) // embedded at build time
	}
	return page
}

// Static returns the stylesheet and other assets under /public.
func Static() fs.FS {
	sub, err := fs.Sub(files, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
