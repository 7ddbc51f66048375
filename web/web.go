package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// NewEngine cria o engine html/template sobre os templates embutidos.
// Os nomes das views são relativos a templates/ (ex.: "clients/index").
func NewEngine() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic("templates embutidos: " + err.Error())
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}

// Static devolve o filesystem dos assets embutidos (servidos em /static).
func Static() http.FileSystem {
	return http.FS(staticFS)
}
