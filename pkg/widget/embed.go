package widget

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded template bundle for consumers that want
// the built-in widget markup out of the box.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
