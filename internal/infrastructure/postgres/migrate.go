package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate aplica o schema de forma idempotente. Executado uma única vez na
// inicialização do processo; seguro de repetir (CREATE IF NOT EXISTS) mesmo
// com vários processos subindo ao mesmo tempo.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS clients (
	    id              BIGSERIAL PRIMARY KEY,
	    nome            VARCHAR(150) NOT NULL,
	    cpf             VARCHAR(10)  NOT NULL UNIQUE,
	    data_nascimento DATE NOT NULL,
	    data_cadastro   DATE NOT NULL DEFAULT CURRENT_DATE,
	    renda_familiar  NUMERIC(14,2)
	)`
	if _, err := pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("criar tabela clients: %w", err)
	}
	return nil
}
