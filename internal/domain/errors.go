package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound     = errors.New("recurso não encontrado")
	ErrDuplicateCPF = errors.New("CPF já cadastrado")
	ErrInvalidInput = errors.New("entrada inválida")
)
