package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Chaves dos erros de campo (iguais aos rótulos exibidos no formulário).
const (
	FieldName      = "Nome"
	FieldCPF       = "CPF"
	FieldBirthDate = "Data de nascimento"
	FieldIncome    = "Renda familiar"
)

// Input campos crus do formulário, antes de qualquer normalização.
type Input struct {
	Name      string
	CPF       string
	BirthDate string
	Income    string
}

// FieldErrors mapa rótulo do campo -> mensagem legível. Vazio significa entrada válida.
type FieldErrors map[string]string

// Normalized dados do cliente já normalizados e convertidos.
type Normalized struct {
	Name      string
	CPF       string
	BirthDate time.Time
	Income    decimal.NullDecimal
}

// Nome: apenas letras (com acentos), espaço, apóstrofo (' ou ’), hífen e ponto.
var (
	nameRegex = regexp.MustCompile(`^[\p{L}'’. -]+$`)
	cpfRegex  = regexp.MustCompile(`^[0-9]{10}$`)
)

const maxNameLen = 150

// Validate aplica todas as regras de campo de forma independente e coleta
// todas as violações (não para na primeira). Entrada malformada é um resultado
// normal e reportado, nunca um panic. A unicidade do CPF não é verificada aqui;
// é uma constraint da persistência.
func Validate(in Input, today time.Time) (Normalized, FieldErrors) {
	errs := FieldErrors{}
	var out Normalized

	out.Name = normalizeName(in.Name)
	switch {
	case out.Name == "":
		errs[FieldName] = "Campo obrigatório."
	case utf8.RuneCountInString(out.Name) > maxNameLen:
		errs[FieldName] = "Máximo 150 caracteres."
	case !nameRegex.MatchString(out.Name):
		errs[FieldName] = "Use apenas letras, espaços, apóstrofo, hífen e ponto."
	}

	out.CPF = strings.TrimSpace(in.CPF)
	if !cpfRegex.MatchString(out.CPF) {
		errs[FieldCPF] = "Informe 10 dígitos numéricos."
	}

	birth, err := time.Parse("2006-01-02", strings.TrimSpace(in.BirthDate))
	if err != nil {
		errs[FieldBirthDate] = "Data inválida ou vazia."
	} else if birth.After(DateOnly(today)) {
		errs[FieldBirthDate] = "Não pode ser futura."
	} else {
		out.BirthDate = birth
	}

	if raw := strings.TrimSpace(in.Income); raw != "" {
		income, err := decimal.NewFromString(raw)
		switch {
		case err != nil:
			errs[FieldIncome] = "Valor inválido."
		case income.IsNegative():
			errs[FieldIncome] = "Deve ser maior ou igual a 0."
		default:
			out.Income = decimal.NewNullDecimal(income.Round(2))
		}
	}

	return out, errs
}

// normalizeName remove espaços nas pontas e colapsa sequências internas de
// espaço em branco num único espaço.
func normalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// DateOnly trunca um instante para a meia-noite do mesmo dia (UTC do campo DATE).
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
