package meeting

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для выполнения запросов, *sql.DB и *sql.Tx ему удовлетворяют
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
