package postgres

import (
	"context"
	"database/sql"
)

// Queryer é satisfeito por Connection e pelos fakes de teste dos repositórios
type Queryer interface {
	Exec(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...interface{}) *sql.Row
}
