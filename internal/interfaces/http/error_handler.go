package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/clientes-admin/pkg/logger"
)

// NewErrorHandler devolve o ErrorHandler do Fiber. Erros de validação nunca
// chegam aqui (são re-render do formulário); o que chega é 404 e falha de
// infraestrutura (ex.: banco fora do ar), respondida com a página genérica.
func NewErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code == fiber.StatusNotFound {
			return c.Status(code).Render("errors/404", fiber.Map{"Title": "Não encontrado"})
		}
		if code >= fiber.StatusInternalServerError {
			log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("erro interno")
		}
		return c.Status(code).Render("errors/500", fiber.Map{"Title": "Erro interno"})
	}
}
