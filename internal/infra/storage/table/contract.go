package table

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для выполнения запросов
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
