package web

import (
	"embed"
	"io/fs"
	"path"
)

const templatesDir = "templates"

var (
	//go:embed static/*
	embeddedStaticFiles embed.FS

	//go:embed templates/*
	embeddedTemplates embed.FS
)

// templateEmbedFS serves the embedded templates directory as the template root, so
// layouts are addressed as "layouts/base" instead of "templates/layouts/base".
type templateEmbedFS struct {
	content embed.FS
}

// Open opens the named file below templatesDir.
func (e templateEmbedFS) Open(name string) (fs.File, error) {
	return e.content.Open(path.Join(templatesDir, name)) //nolint:wrapcheck
}
