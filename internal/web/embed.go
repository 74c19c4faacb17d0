package web

import (
	"embed"
	"io/fs"
	"net/http"
)

var (
	//go:embed static
	staticFiles embed.FS

	//go:embed templates
	templateFiles embed.FS
)

// embeddedDir serves the embedded tree below dir. dir is one of the embed
// patterns above, so fs.Sub can not fail.
func embeddedDir(fsys embed.FS, dir string) http.FileSystem {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}

	return http.FS(sub)
}
