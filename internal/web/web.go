// Package web embeds the HTML templates and default avatar images.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed avatars/*.png
var avatarFiles embed.FS

// Avatars returns the embedded avatar images rooted at their directory.
func Avatars() fs.FS {
	sub, err := fs.Sub(avatarFiles, "avatars")
	if err != nil {
		panic(err)
	}
	return sub
}

// Templates parses the layout together with every page template.
func Templates() (*template.Template, error) {
	return template.New("layout.html").Funcs(template.FuncMap{
		"alertClass": alertClass,
	}).ParseFS(templateFiles, "templates/*.html")
}

func alertClass(level string) string {
	switch level {
	case "success":
		return "alert alert-success"
	case "warning":
		return "alert alert-warning"
	case "error":
		return "alert alert-error"
	default:
		return "alert alert-info"
	}
}
