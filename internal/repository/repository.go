package repository

import (
	"context"
	"database/sql"
	"strings"
)

// DBTX is an interface abstracting *sqlx.DB and *sqlx.Tx for repository use.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// oraUniqueViolation is the Oracle error raised on a unique constraint conflict.
// Both godror and go-ora keep the code in the error text.
const oraUniqueViolation = "ORA-00001"

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), oraUniqueViolation)
}
