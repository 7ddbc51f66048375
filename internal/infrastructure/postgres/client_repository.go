package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/clientes-admin/internal/domain"
	"github.com/tu-usuario/clientes-admin/internal/domain/entity"
	"github.com/tu-usuario/clientes-admin/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementação PostgreSQL de ClientRepository.
type ClientRepo struct {
	pool *pgxpool.Pool
}

// NewClientRepository constrói o adaptador.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepo {
	return &ClientRepo{pool: pool}
}

const clientColumns = `id, nome, cpf, data_nascimento, data_cadastro, renda_familiar`

// Create persiste um novo cliente e preenche o ID gerado.
func (r *ClientRepo) Create(ctx context.Context, client *entity.Client) error {
	query := `
		INSERT INTO clients (nome, cpf, data_nascimento, data_cadastro, renda_familiar)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		client.Name, client.CPF, client.BirthDate, client.RegistrationDate, client.Income,
	).Scan(&client.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCPF
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

// GetByID obtém um cliente por ID. Devolve nil, nil quando não existe.
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = $1`
	var c entity.Client
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.CPF, &c.BirthDate, &c.RegistrationDate, &c.Income,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return &c, nil
}

// List lista clientes ordenados por nome. nameFilter não vazio restringe por
// substring do nome (ILIKE, sem distinção de maiúsculas ou acentos do ILIKE).
func (r *ClientRepo) List(ctx context.Context, nameFilter string) ([]*entity.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY nome ASC`
	args := []any{}
	if nameFilter != "" {
		query = `SELECT ` + clientColumns + ` FROM clients WHERE nome ILIKE $1 ORDER BY nome ASC`
		args = append(args, "%"+nameFilter+"%")
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()
	var list []*entity.Client
	for rows.Next() {
		var c entity.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.CPF, &c.BirthDate, &c.RegistrationDate, &c.Income); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update atualiza um cliente. data_cadastro nunca muda após a criação.
func (r *ClientRepo) Update(ctx context.Context, client *entity.Client) error {
	query := `
		UPDATE clients
		   SET nome = $2, cpf = $3, data_nascimento = $4, renda_familiar = $5
		 WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		client.ID, client.Name, client.CPF, client.BirthDate, client.Income,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateCPF
		}
		return fmt.Errorf("update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete apaga um cliente por ID. Idempotente: ID ausente não é erro.
func (r *ClientRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM clients WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

// IncomeStats calcula os agregados do relatório.
// A média e a contagem de maiores de 18 acima da média são sobre a tabela
// inteira; somente as contagens por faixa respeitam o recorte de período.
func (r *ClientRepo) IncomeStats(ctx context.Context, since *time.Time, adultCutoff time.Time) (repository.IncomeStats, error) {
	var stats repository.IncomeStats

	err := r.pool.QueryRow(ctx,
		`SELECT AVG(renda_familiar) FROM clients WHERE renda_familiar IS NOT NULL`,
	).Scan(&stats.AvgIncome)
	if err != nil {
		return stats, fmt.Errorf("income stats: média: %w", err)
	}

	// Sem nenhuma renda informada a média é indefinida e a contagem é zero por vacuidade.
	if stats.AvgIncome.Valid {
		err = r.pool.QueryRow(ctx, `
			SELECT COUNT(*)
			  FROM clients
			 WHERE renda_familiar IS NOT NULL
			   AND renda_familiar > $1
			   AND data_nascimento <= $2`,
			stats.AvgIncome.Decimal, adultCutoff,
		).Scan(&stats.AdultsAboveAvg)
		if err != nil {
			return stats, fmt.Errorf("income stats: acima da média: %w", err)
		}
	}

	err = r.pool.QueryRow(ctx, `
		SELECT
		    COALESCE(SUM(CASE WHEN renda_familiar <= 980.00 THEN 1 ELSE 0 END), 0)                              AS class_a,
		    COALESCE(SUM(CASE WHEN renda_familiar > 980.00 AND renda_familiar <= 2500.00 THEN 1 ELSE 0 END), 0) AS class_b,
		    COALESCE(SUM(CASE WHEN renda_familiar > 2500.00 THEN 1 ELSE 0 END), 0)                              AS class_c
		  FROM clients
		 WHERE renda_familiar IS NOT NULL
		   AND ($1::DATE IS NULL OR data_cadastro >= $1)`,
		since,
	).Scan(&stats.ClassA, &stats.ClassB, &stats.ClassC)
	if err != nil {
		return stats, fmt.Errorf("income stats: faixas: %w", err)
	}

	return stats, nil
}
