package usecase

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/clientes-admin/internal/application/dto"
	"github.com/tu-usuario/clientes-admin/internal/domain"
	"github.com/tu-usuario/clientes-admin/internal/domain/entity"
	"github.com/tu-usuario/clientes-admin/internal/domain/repository"
	"github.com/tu-usuario/clientes-admin/internal/domain/validation"
)

// ──────────────────────────────────────────────────────────────────────────────
// fakeRepo — ClientRepository em memória para os testes de caso de uso
// ──────────────────────────────────────────────────────────────────────────────

type fakeRepo struct {
	clients map[int64]*entity.Client
	nextID  int64

	stats       repository.IncomeStats
	statsSince  *time.Time
	statsCutoff time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{clients: map[int64]*entity.Client{}, nextID: 1}
}

func (f *fakeRepo) Create(_ context.Context, client *entity.Client) error {
	for _, c := range f.clients {
		if c.CPF == client.CPF {
			return domain.ErrDuplicateCPF
		}
	}
	client.ID = f.nextID
	f.nextID++
	cp := *client
	f.clients[client.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*entity.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context, nameFilter string) ([]*entity.Client, error) {
	var list []*entity.Client
	for _, c := range f.clients {
		if nameFilter == "" || strings.Contains(strings.ToLower(c.Name), strings.ToLower(nameFilter)) {
			cp := *c
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (f *fakeRepo) Update(_ context.Context, client *entity.Client) error {
	if _, ok := f.clients[client.ID]; !ok {
		return domain.ErrNotFound
	}
	for id, c := range f.clients {
		if id != client.ID && c.CPF == client.CPF {
			return domain.ErrDuplicateCPF
		}
	}
	cp := *client
	f.clients[client.ID] = &cp
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	delete(f.clients, id)
	return nil
}

func (f *fakeRepo) IncomeStats(_ context.Context, since *time.Time, adultCutoff time.Time) (repository.IncomeStats, error) {
	f.statsSince = since
	f.statsCutoff = adultCutoff
	return f.stats, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2025, 9, 3, 10, 0, 0, 0, time.UTC) // quarta-feira

func newClientUC(repo repository.ClientRepository) *ClientUseCase {
	uc := NewClientUseCase(repo)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func validForm() dto.ClientForm {
	return dto.ClientForm{
		Name:      "Ana Souza",
		CPF:       "1112223334",
		BirthDate: "1992-03-10",
		Income:    "2000.00",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestClientCreate_Aceito(t *testing.T) {
	repo := newFakeRepo()
	uc := newClientUC(repo)

	res, err := uc.Create(context.Background(), validForm())
	require.NoError(t, err)
	require.True(t, res.Accepted())
	assert.Equal(t, "/clients?saved=1", res.Redirect)

	stored := repo.clients[1]
	require.NotNil(t, stored)
	assert.Equal(t, "Ana Souza", stored.Name)
	assert.Equal(t, "1112223334", stored.CPF)
	// data_cadastro carimbada pelo servidor com a data de hoje
	assert.Equal(t, time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC), stored.RegistrationDate)
}

func TestClientCreate_NormalizaNome(t *testing.T) {
	repo := newFakeRepo()
	uc := newClientUC(repo)

	form := validForm()
	form.Name = "  Ana    Souza "
	res, err := uc.Create(context.Background(), form)
	require.NoError(t, err)
	require.True(t, res.Accepted())
	assert.Equal(t, "Ana Souza", repo.clients[1].Name)
}

func TestClientCreate_Rejeitado_NadaPersistido(t *testing.T) {
	repo := newFakeRepo()
	uc := newClientUC(repo)

	form := dto.ClientForm{Name: "Jo4o", CPF: "12x", BirthDate: "", Income: "-5"}
	res, err := uc.Create(context.Background(), form)
	require.NoError(t, err, "violações de validação não são error")
	require.False(t, res.Accepted())
	assert.Len(t, res.Errors, 4)
	assert.Equal(t, form, res.Form, "os valores submetidos são ecoados para re-render")
	assert.Empty(t, repo.clients)
}

func TestClientCreate_CPFDuplicado(t *testing.T) {
	repo := newFakeRepo()
	uc := newClientUC(repo)

	_, err := uc.Create(context.Background(), validForm())
	require.NoError(t, err)

	form := validForm()
	form.Name = "Outra Pessoa"
	res, err := uc.Create(context.Background(), form)
	require.NoError(t, err, "CPF duplicado é resultado rejeitado, não error")
	require.False(t, res.Accepted())
	assert.Equal(t, "CPF já cadastrado.", res.Errors[validation.FieldCPF])

	// o registro original não foi alterado
	require.Len(t, repo.clients, 1)
	assert.Equal(t, "Ana Souza", repo.clients[1].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestClientUpdate_MantemDataCadastro(t *testing.T) {
	repo := newFakeRepo()
	uc := newClientUC(repo)

	_, err := uc.Create(context.Background(), validForm())
	require.NoError(t, err)

	// dias depois, o operador edita o cliente
	uc.now = func() time.Time { return fixedNow.AddDate(0, 0, 10) }
	form := validForm()
	form.Name = "Ana Souza Lima"
	res, err := uc.Update(context.Background(), 1, form)
	require.NoError(t, err)
	require.True(t, res.Accepted())

	stored := repo.clients[1]
	assert.Equal(t, "Ana Souza Lima", stored.Name)
	assert.Equal(t, time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC), stored.RegistrationDate,
		"data_cadastro nunca muda após a criação")
}

func TestClientUpdate_NaoEncontrado(t *testing.T) {
	uc := newClientUC(newFakeRepo())
	_, err := uc.Update(context.Background(), 42, validForm())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientUpdate_CPFDeOutroCliente(t *testing.T) {
	repo := newFakeRepo()
	uc := newClientUC(repo)

	_, err := uc.Create(context.Background(), validForm())
	require.NoError(t, err)
	second := validForm()
	second.Name = "Bruno Costa"
	second.CPF = "9998887776"
	_, err = uc.Create(context.Background(), second)
	require.NoError(t, err)

	// tentar dar ao segundo o CPF do primeiro
	second.CPF = "1112223334"
	res, err := uc.Update(context.Background(), 2, second)
	require.NoError(t, err)
	require.False(t, res.Accepted())
	assert.Equal(t, "CPF já cadastrado.", res.Errors[validation.FieldCPF])
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / round-trip
// ──────────────────────────────────────────────────────────────────────────────

func TestClientDelete_Idempotente(t *testing.T) {
	repo := newFakeRepo()
	uc := newClientUC(repo)

	require.NoError(t, uc.Delete(context.Background(), 999), "apagar ID inexistente não é erro")

	_, err := uc.Create(context.Background(), validForm())
	require.NoError(t, err)
	require.NoError(t, uc.Delete(context.Background(), 1))
	require.NoError(t, uc.Delete(context.Background(), 1))
	assert.Empty(t, repo.clients)
}

func TestClientCreate_RoundTrip(t *testing.T) {
	repo := newFakeRepo()
	uc := newClientUC(repo)

	form := validForm()
	form.Name = " Ana   Souza "
	form.Income = "2000.005"
	_, err := uc.Create(context.Background(), form)
	require.NoError(t, err)

	got, err := uc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Ana Souza", got.Name)
	assert.Equal(t, "1112223334", got.CPF)
	assert.Equal(t, time.Date(1992, 3, 10, 0, 0, 0, 0, time.UTC), got.BirthDate)
	require.True(t, got.Income.Valid)
	// a normalização aplicada na criação (arredondamento a 2 casas) é o que volta
	assert.True(t, got.Income.Decimal.Equal(decimal.RequireFromString("2000.01")))
}
