package http

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/clientes-admin/internal/domain/entity"
)

// formatCurrency formata uma renda como "R$ 1.234" (arredondada ao inteiro,
// ponto como separador de milhar). Renda desconhecida vira "—".
func formatCurrency(d decimal.NullDecimal) string {
	if !d.Valid {
		return "—"
	}
	return "R$ " + groupThousands(d.Decimal.Round(0).IntPart())
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ".")
	if neg {
		out = "-" + out
	}
	return out
}

// badgeClass devolve o sufixo da classe CSS do badge de renda.
func badgeClass(c entity.IncomeClass) string {
	if c == entity.IncomeClassNone {
		return "neutral"
	}
	return strings.ToLower(string(c))
}

func fmtDate(t time.Time) string {
	return t.Format("2006-01-02")
}
