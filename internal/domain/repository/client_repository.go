package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/clientes-admin/internal/domain/entity"
)

// IncomeStats agregados do relatório de renda.
// AvgIncome e AdultsAboveAvg são calculados sobre a tabela inteira;
// somente as contagens por faixa respeitam o recorte de período.
type IncomeStats struct {
	AvgIncome      decimal.NullDecimal // nula quando nenhum cliente tem renda informada
	AdultsAboveAvg int64
	ClassA         int64
	ClassB         int64
	ClassC         int64
}

// ClientRepository define o porto de persistência para Client.
type ClientRepository interface {
	// Create persiste um novo cliente e preenche o ID gerado.
	// Devolve domain.ErrDuplicateCPF se o CPF já existe.
	Create(ctx context.Context, client *entity.Client) error
	// GetByID devolve nil, nil quando o ID não existe.
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	// List devolve os clientes ordenados por nome; nameFilter não vazio filtra
	// por substring do nome, sem distinção de maiúsculas.
	List(ctx context.Context, nameFilter string) ([]*entity.Client, error)
	// Update devolve domain.ErrNotFound se o ID não existe e
	// domain.ErrDuplicateCPF se o novo CPF colide com outro cliente.
	Update(ctx context.Context, client *entity.Client) error
	// Delete é idempotente: apagar um ID inexistente não é erro.
	Delete(ctx context.Context, id int64) error
	// IncomeStats calcula os agregados do relatório. since nil significa sem
	// recorte de período; adultCutoff é a data máxima de nascimento para ter 18 anos.
	IncomeStats(ctx context.Context, since *time.Time, adultCutoff time.Time) (IncomeStats, error)
}
