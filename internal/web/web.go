package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Layout is the base layout every page renders into.
const Layout = "layouts/main"

// NewEngine builds the HTML view engine over the embedded templates.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(err)
	}
	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFuncMap(template.FuncMap{
		// Question bodies are stored as the HTML produced by the in-place editor.
		"raw": func(s string) template.HTML {
			return template.HTML(s)
		},
		"upper": strings.ToUpper,
	})
	return engine
}

// Static exposes the embedded static assets rooted at "static".
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
