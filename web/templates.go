package web

import (
	"embed"
	"html/template"

	"clinicsuite-server/internal/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates with the shared path helpers
// registered. The result is handed to gin's SetHTMLTemplate.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"routePath": utils.RoutePath,
		"assetPath": utils.AssetPath,
	}).ParseFS(templateFS, "templates/*.html"))
}
