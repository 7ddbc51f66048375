package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Client representa um cliente cadastrado.
// RegistrationDate é carimbada pelo servidor na criação e nunca editável.
// Income ausente significa "desconhecida", não zero.
type Client struct {
	ID               int64
	Name             string
	CPF              string // 10 dígitos, único
	BirthDate        time.Time
	RegistrationDate time.Time
	Income           decimal.NullDecimal
}

// IncomeClass faixa de renda derivada (somente exibição, não armazenada).
type IncomeClass string

const (
	IncomeClassNone IncomeClass = ""  // sem renda informada
	IncomeClassA    IncomeClass = "A" // <= 980,00
	IncomeClassB    IncomeClass = "B" // 980,01 a 2.500,00
	IncomeClassC    IncomeClass = "C" // > 2.500,00
)

var (
	classAMax = decimal.NewFromInt(980)
	classBMax = decimal.NewFromInt(2500)
)

// Class devolve a faixa de renda do cliente, ou IncomeClassNone se a renda é desconhecida.
func (c *Client) Class() IncomeClass {
	return ClassOf(c.Income)
}

// ClassOf classifica um valor de renda nas faixas A/B/C.
func ClassOf(income decimal.NullDecimal) IncomeClass {
	if !income.Valid {
		return IncomeClassNone
	}
	switch {
	case income.Decimal.LessThanOrEqual(classAMax):
		return IncomeClassA
	case income.Decimal.LessThanOrEqual(classBMax):
		return IncomeClassB
	default:
		return IncomeClassC
	}
}
