// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/shop-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/shop-dashboard-api/internal/domain"
)

const sampleGenerationTable = "sample_generation"

// Código de erro do Postgres para tabela inexistente
const undefinedTableCode = "42P01"

var sampleGenerationColumns = []string{
	"id",
	"shop",
	"title",
	"product_id",
	"variant_id",
	"price",
	"status",
	"attempts",
	"last_error",
	"created_at",
	"updated_at",
}

type SampleGenerationRepository interface {
	Save(ctx context.Context, generation *domain.SampleGeneration) error
	ListPending(ctx context.Context, maxAttempts int) ([]*domain.SampleGeneration, error)
}

type sampleGenerationRepository struct {
	conn postgres.Queryer
}

func NewSampleGenerationRepository(conn postgres.Queryer) SampleGenerationRepository {
	return &sampleGenerationRepository{
		conn: conn,
	}
}

// Save insere o registro ou atualiza status, tentativas e erro quando o id já existe
func (r *sampleGenerationRepository) Save(ctx context.Context, generation *domain.SampleGeneration) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(sampleGenerationTable).
		Columns(sampleGenerationColumns...).
		Values(
			generation.ID,
			generation.Shop,
			generation.Title,
			generation.ProductID,
			generation.VariantID,
			generation.Price,
			string(generation.Status),
			generation.Attempts,
			generation.LastError,
			generation.CreatedAt,
			generation.UpdatedAt,
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			product_id = EXCLUDED.product_id,
			variant_id = EXCLUDED.variant_id,
			status = EXCLUDED.status,
			attempts = EXCLUDED.attempts,
			last_error = EXCLUDED.last_error,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return wrapPQError(err, "erro ao salvar geração de produto")
	}

	return nil
}

// ListPending retorna os produtos criados cujo preço ainda não foi aplicado
func (r *sampleGenerationRepository) ListPending(ctx context.Context, maxAttempts int) ([]*domain.SampleGeneration, error) {
	query, args, err := squirrel.
		Select(sampleGenerationColumns...).
		From(sampleGenerationTable).
		Where(squirrel.Eq{"status": string(domain.SampleGenerationPendingPrice)}).
		Where(squirrel.Lt{"attempts": maxAttempts}).
		Where(squirrel.NotEq{"variant_id": nil}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapPQError(err, "erro ao executar a query")
	}
	defer rows.Close()

	generations := make([]*domain.SampleGeneration, 0)
	for rows.Next() {
		generation, err := scanSampleGeneration(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear geração de produto: %w", err)
		}
		generations = append(generations, generation)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return generations, nil
}

func scanSampleGeneration(rows *sql.Rows) (*domain.SampleGeneration, error) {
	var (
		generation domain.SampleGeneration
		status     string
	)

	err := rows.Scan(
		&generation.ID,
		&generation.Shop,
		&generation.Title,
		&generation.ProductID,
		&generation.VariantID,
		&generation.Price,
		&status,
		&generation.Attempts,
		&generation.LastError,
		&generation.CreatedAt,
		&generation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	generation.Status = domain.SampleGenerationStatus(status)
	return &generation, nil
}

func wrapPQError(err error, message string) error {
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == undefinedTableCode {
		return fmt.Errorf("%s: tabela %s não existe, rode a migração: %w", message, sampleGenerationTable, err)
	}
	return fmt.Errorf("%s: %w", message, err)
}
