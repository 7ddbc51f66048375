package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/clientes-admin/internal/domain/repository"
	"github.com/tu-usuario/clientes-admin/internal/domain/validation"
)

// Period recorte de período do relatório, ancorado em data_cadastro.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodAll   Period = "all"
)

// ParsePeriod interpreta o valor do query param. Valores desconhecidos caem
// silenciosamente em PeriodAll, nunca erram.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodToday, PeriodWeek, PeriodMonth:
		return Period(s)
	default:
		return PeriodAll
	}
}

// WindowStart devolve o início da janela do período, ou nil para "todos".
// A semana começa na segunda-feira mais recente igual ou anterior a hoje.
func (p Period) WindowStart(today time.Time) *time.Time {
	today = validation.DateOnly(today)
	switch p {
	case PeriodToday:
		return &today
	case PeriodWeek:
		offset := (int(today.Weekday()) + 6) % 7
		monday := today.AddDate(0, 0, -offset)
		return &monday
	case PeriodMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return &first
	default:
		return nil
	}
}

// ReportSummary valores dos cards do relatório.
type ReportSummary struct {
	Period         Period
	AvgIncome      decimal.NullDecimal
	AdultsAboveAvg int64
	ClassA         int64
	ClassB         int64
	ClassC         int64
}

// ReportUseCase agregados de renda por período de cadastro.
type ReportUseCase struct {
	repo repository.ClientRepository
	now  func() time.Time
}

// NewReportUseCase constrói o caso de uso com o relógio do sistema.
func NewReportUseCase(repo repository.ClientRepository) *ReportUseCase {
	return &ReportUseCase{repo: repo, now: time.Now}
}

// Summary calcula os cards do relatório. A média e a contagem de maiores de 18
// acima da média ignoram o período (comportamento observado do sistema);
// somente as contagens por faixa A/B/C respeitam a janela.
func (uc *ReportUseCase) Summary(ctx context.Context, period Period) (ReportSummary, error) {
	today := validation.DateOnly(uc.now())
	adultCutoff := today.AddDate(-18, 0, 0)

	stats, err := uc.repo.IncomeStats(ctx, period.WindowStart(today), adultCutoff)
	if err != nil {
		return ReportSummary{}, err
	}
	return ReportSummary{
		Period:         period,
		AvgIncome:      stats.AvgIncome,
		AdultsAboveAvg: stats.AdultsAboveAvg,
		ClassA:         stats.ClassA,
		ClassB:         stats.ClassB,
		ClassC:         stats.ClassC,
	}, nil
}
