package http

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/clientes-admin/internal/application/dto"
	"github.com/tu-usuario/clientes-admin/internal/application/usecase"
	"github.com/tu-usuario/clientes-admin/internal/domain"
	"github.com/tu-usuario/clientes-admin/internal/domain/entity"
)

// ClientHandler trata as rotas HTML de clientes.
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler constrói o handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// clientRow linha da listagem, com renda e badge já formatados.
type clientRow struct {
	ID          int64
	Name        string
	IncomeLabel string
	BadgeClass  string
}

// List GET /clients?q=...&saved=1
func (h *ClientHandler) List(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	clients, err := h.uc.List(c.Context(), q)
	if err != nil {
		return fmt.Errorf("listar clientes: %w", err)
	}

	rows := make([]clientRow, 0, len(clients))
	for _, cl := range clients {
		rows = append(rows, clientRow{
			ID:          cl.ID,
			Name:        cl.Name,
			IncomeLabel: formatCurrency(cl.Income),
			BadgeClass:  badgeClass(cl.Class()),
		})
	}

	flash := ""
	if c.Query("saved") == "1" {
		flash = "Cliente salvo com sucesso."
	}
	return c.Render("clients/index", fiber.Map{
		"Title":   "Clientes",
		"Flash":   flash,
		"Query":   q,
		"Clients": rows,
	})
}

// New GET /clients/new
func (h *ClientHandler) New(c *fiber.Ctx) error {
	today := fmtDate(h.uc.Today())
	return c.Render("clients/form", fiber.Map{
		"Title":            "Cliente",
		"IsEdit":           false,
		"Action":           "/clients",
		"Form":             dto.ClientForm{},
		"Today":            today,
		"RegistrationDate": today,
	})
}

// Create POST /clients
func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var form dto.ClientForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "formulário inválido")
	}

	res, err := h.uc.Create(c.Context(), form)
	if err != nil {
		return fmt.Errorf("criar cliente: %w", err)
	}
	if !res.Accepted() {
		today := fmtDate(h.uc.Today())
		return c.Render("clients/form", fiber.Map{
			"Title":            "Cliente",
			"IsEdit":           false,
			"Action":           "/clients",
			"Form":             res.Form,
			"Errors":           res.Errors,
			"Today":            today,
			"RegistrationDate": today,
		})
	}
	return c.Redirect(res.Redirect, fiber.StatusFound)
}

// Edit GET /clients/:id/edit
func (h *ClientHandler) Edit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fiber.ErrNotFound
	}
	client, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return fmt.Errorf("buscar cliente: %w", err)
	}
	if client == nil {
		return fiber.ErrNotFound
	}
	return c.Render("clients/form", fiber.Map{
		"Title":            "Cliente",
		"IsEdit":           true,
		"Action":           fmt.Sprintf("/clients/%d/update", id),
		"Form":             formFromClient(client),
		"Today":            fmtDate(h.uc.Today()),
		"RegistrationDate": fmtDate(client.RegistrationDate),
	})
}

// Update POST /clients/:id/update
func (h *ClientHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fiber.ErrNotFound
	}
	var form dto.ClientForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "formulário inválido")
	}

	res, err := h.uc.Update(c.Context(), id, form)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fiber.ErrNotFound
		}
		return fmt.Errorf("atualizar cliente: %w", err)
	}
	if !res.Accepted() {
		// Reconsulta só para exibir a data de cadastro original no formulário.
		regDate := ""
		if existing, err := h.uc.GetByID(c.Context(), id); err == nil && existing != nil {
			regDate = fmtDate(existing.RegistrationDate)
		}
		return c.Render("clients/form", fiber.Map{
			"Title":            "Cliente",
			"IsEdit":           true,
			"Action":           fmt.Sprintf("/clients/%d/update", id),
			"Form":             res.Form,
			"Errors":           res.Errors,
			"Today":            fmtDate(h.uc.Today()),
			"RegistrationDate": regDate,
		})
	}
	return c.Redirect(res.Redirect, fiber.StatusFound)
}

// Delete POST /clients/:id/delete
func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fiber.ErrNotFound
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return fmt.Errorf("excluir cliente: %w", err)
	}
	return c.Redirect("/clients", fiber.StatusFound)
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// formFromClient converte a entidade nos valores crus do formulário de edição.
func formFromClient(client *entity.Client) dto.ClientForm {
	income := ""
	if client.Income.Valid {
		income = client.Income.Decimal.StringFixed(2)
	}
	return dto.ClientForm{
		Name:      client.Name,
		CPF:       client.CPF,
		BirthDate: fmtDate(client.BirthDate),
		Income:    income,
	}
}
