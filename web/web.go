// Package web holds the browser-facing assets: HTML templates and the static
// files for the media capture widget, embedded into the binary.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/Alllfr/snap-journal/internal/media"
)

//go:embed templates static
var assets embed.FS

// Templates parses all page templates with the media helpers registered.
func Templates() *template.Template {
	funcs := template.FuncMap{
		"mediaKind": media.Kind,
		// Stored payloads are data URIs or server-controlled storage paths;
		// template.URL keeps html/template from rewriting the data: scheme.
		"mediaURL": func(payload string) template.URL {
			return template.URL(media.URL(payload))
		},
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(assets, "templates/*.html"))
}

// StaticFS exposes the static assets for serving under /static.
func StaticFS() http.FileSystem {
	static, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(static)
}
