package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/clientes-admin/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ClientUC *usecase.ClientUseCase
	ReportUC *usecase.ReportUseCase
}

// Router registra as rotas da aplicação.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/clients", fiber.StatusFound)
	})

	clientHandler := NewClientHandler(deps.ClientUC)
	clients := app.Group("/clients")
	clients.Get("/", clientHandler.List)
	clients.Get("/new", clientHandler.New)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id/edit", clientHandler.Edit)
	clients.Post("/:id/update", clientHandler.Update)
	clients.Post("/:id/delete", clientHandler.Delete)

	reportHandler := NewReportHandler(deps.ReportUC)
	app.Get("/reports", reportHandler.Show)
}
