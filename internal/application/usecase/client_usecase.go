package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/tu-usuario/clientes-admin/internal/application/dto"
	"github.com/tu-usuario/clientes-admin/internal/domain"
	"github.com/tu-usuario/clientes-admin/internal/domain/entity"
	"github.com/tu-usuario/clientes-admin/internal/domain/repository"
	"github.com/tu-usuario/clientes-admin/internal/domain/validation"
)

// SubmitResult resultado explícito de uma submissão de formulário:
// aceito (Redirect preenchido) ou rejeitado (Errors + Form ecoado para re-render).
type SubmitResult struct {
	Redirect string
	Errors   validation.FieldErrors
	Form     dto.ClientForm
}

// Accepted indica se a submissão foi persistida.
func (r SubmitResult) Accepted() bool { return len(r.Errors) == 0 }

// ClientUseCase casos de uso CRUD de clientes. O relógio é injetado para que
// as três regras dependentes da data atual (teto da data de nascimento,
// carimbo de data_cadastro, recortes do relatório) sejam determinísticas em teste.
type ClientUseCase struct {
	repo repository.ClientRepository
	now  func() time.Time
}

// NewClientUseCase constrói o caso de uso com o relógio do sistema.
func NewClientUseCase(repo repository.ClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo, now: time.Now}
}

// Today devolve a data atual do relógio injetado, truncada ao dia
// (usada também pelos formulários para o teto de data de nascimento).
func (uc *ClientUseCase) Today() time.Time {
	return validation.DateOnly(uc.now())
}

// Create valida e persiste um novo cliente. Violações de validação e CPF
// duplicado são resultados normais (SubmitResult rejeitado), nunca error;
// o retorno error fica reservado a falhas de infraestrutura.
func (uc *ClientUseCase) Create(ctx context.Context, form dto.ClientForm) (SubmitResult, error) {
	today := uc.now()
	norm, errs := validation.Validate(validation.Input{
		Name:      form.Name,
		CPF:       form.CPF,
		BirthDate: form.BirthDate,
		Income:    form.Income,
	}, today)
	if len(errs) > 0 {
		return SubmitResult{Errors: errs, Form: form}, nil
	}

	client := &entity.Client{
		Name:             norm.Name,
		CPF:              norm.CPF,
		BirthDate:        norm.BirthDate,
		RegistrationDate: validation.DateOnly(today),
		Income:           norm.Income,
	}
	if err := uc.repo.Create(ctx, client); err != nil {
		if errors.Is(err, domain.ErrDuplicateCPF) {
			return SubmitResult{
				Errors: validation.FieldErrors{validation.FieldCPF: "CPF já cadastrado."},
				Form:   form,
			}, nil
		}
		return SubmitResult{}, err
	}
	return SubmitResult{Redirect: "/clients?saved=1"}, nil
}

// Update valida e atualiza um cliente existente. data_cadastro é mantida do
// registro armazenado; domain.ErrNotFound quando o ID não existe.
func (uc *ClientUseCase) Update(ctx context.Context, id int64, form dto.ClientForm) (SubmitResult, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return SubmitResult{}, err
	}
	if existing == nil {
		return SubmitResult{}, domain.ErrNotFound
	}

	norm, errs := validation.Validate(validation.Input{
		Name:      form.Name,
		CPF:       form.CPF,
		BirthDate: form.BirthDate,
		Income:    form.Income,
	}, uc.now())
	if len(errs) > 0 {
		return SubmitResult{Errors: errs, Form: form}, nil
	}

	client := &entity.Client{
		ID:               id,
		Name:             norm.Name,
		CPF:              norm.CPF,
		BirthDate:        norm.BirthDate,
		RegistrationDate: existing.RegistrationDate,
		Income:           norm.Income,
	}
	if err := uc.repo.Update(ctx, client); err != nil {
		if errors.Is(err, domain.ErrDuplicateCPF) {
			return SubmitResult{
				Errors: validation.FieldErrors{validation.FieldCPF: "CPF já cadastrado."},
				Form:   form,
			}, nil
		}
		return SubmitResult{}, err
	}
	return SubmitResult{Redirect: "/clients?saved=1"}, nil
}

// Delete apaga um cliente. Idempotente: ID inexistente não é erro.
func (uc *ClientUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// GetByID devolve nil, nil quando o ID não existe.
func (uc *ClientUseCase) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	return uc.repo.GetByID(ctx, id)
}

// List lista clientes por nome, com filtro opcional de substring.
func (uc *ClientUseCase) List(ctx context.Context, nameFilter string) ([]*entity.Client, error) {
	return uc.repo.List(ctx, nameFilter)
}
