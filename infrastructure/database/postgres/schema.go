package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS sample_generation (
		id          VARCHAR(32) PRIMARY KEY,
		shop        TEXT NOT NULL,
		title       TEXT NOT NULL,
		product_id  TEXT,
		variant_id  TEXT,
		price       NUMERIC(12, 2) NOT NULL,
		status      VARCHAR(32) NOT NULL,
		attempts    INTEGER NOT NULL DEFAULT 0,
		last_error  TEXT,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sample_generation_status ON sample_generation (status, attempts)`,
}

// EnsureSchema cria as tabelas usadas pela auditoria, se ainda não existirem
func EnsureSchema(ctx context.Context, conn Conn) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, statement := range schemaStatements {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				return fmt.Errorf("erro ao aplicar schema: %w", err)
			}
		}
		return nil
	})
}
