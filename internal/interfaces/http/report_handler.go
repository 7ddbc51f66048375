package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/clientes-admin/internal/application/usecase"
)

// ReportHandler trata a página de relatórios.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

type periodOption struct {
	Value    string
	Label    string
	Selected bool
}

// Show GET /reports?period=today|week|month|all (default all; valores
// desconhecidos caem em all sem errar).
func (h *ReportHandler) Show(c *fiber.Ctx) error {
	period := usecase.ParsePeriod(c.Query("period"))
	summary, err := h.uc.Summary(c.Context(), period)
	if err != nil {
		return fmt.Errorf("relatório de renda: %w", err)
	}

	return c.Render("reports/index", fiber.Map{
		"Title":    "Relatórios",
		"Periods":  periodOptions(period),
		"AboveAvg": summary.AdultsAboveAvg,
		"AvgLabel": formatCurrency(summary.AvgIncome),
		"ClassA":   summary.ClassA,
		"ClassB":   summary.ClassB,
		"ClassC":   summary.ClassC,
	})
}

func periodOptions(active usecase.Period) []periodOption {
	opts := []periodOption{
		{Value: string(usecase.PeriodToday), Label: "Hoje"},
		{Value: string(usecase.PeriodWeek), Label: "Esta semana"},
		{Value: string(usecase.PeriodMonth), Label: "Este mês"},
		{Value: string(usecase.PeriodAll), Label: "Todos"},
	}
	for i := range opts {
		opts[i].Selected = opts[i].Value == string(active)
	}
	return opts
}
