package repository

import (
	"context"
	"database/sql"

	"interview-bank/internal/database"

	"github.com/jmoiron/sqlx"
)

// DBTX is an interface abstracting *sqlx.DB, *sqlx.Conn and *sqlx.Tx for repository use.
type DBTX interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	Rebind(query string) string
}

// GetExecutor picks what a repository call runs on: the transaction in ctx,
// else the request session connection, else the pool.
func GetExecutor(ctx context.Context, db *sqlx.DB) (DBTX, error) {
	if tx, ok := ctx.Value(TransactionContextKey).(*sqlx.Tx); ok && tx != nil {
		return tx, nil
	}
	if s, ok := database.SessionFrom(ctx); ok {
		conn, err := s.Conn(ctx)
		if err != nil {
			return nil, err
		}
		return conn, nil
	}
	return db, nil
}
