package repository

import (
	"context"
	"database/sql"
	"fmt"

	"interview-bank/internal/database"
	"interview-bank/internal/domain"
	"interview-bank/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type contextKey string

const (
	// TransactionContextKey is the context key holding the active *sqlx.Tx.
	TransactionContextKey contextKey = "tx"
)

// TransactionManagerAdapter implements domain.TransactionManager with sqlx.
type TransactionManagerAdapter struct {
	db *sqlx.DB
}

func NewTransactionManagerAdapter(db *sqlx.DB) domain.TransactionManager {
	return &TransactionManagerAdapter{db: db}
}

func (tma *TransactionManagerAdapter) begin(ctx context.Context) (*sqlx.Tx, error) {
	if s, ok := database.SessionFrom(ctx); ok {
		conn, err := s.Conn(ctx)
		if err != nil {
			return nil, err
		}
		return conn.BeginTxx(ctx, nil)
	}
	return tma.db.BeginTxx(ctx, nil)
}

// WithTransaction runs fn inside a transaction. A transaction already present
// in ctx is reused, so nested calls join the outer transaction.
func (tma *TransactionManagerAdapter) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx, ok := ctx.Value(TransactionContextKey).(*sqlx.Tx); ok && tx != nil {
		return fn(ctx)
	}

	tx, err := tma.begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil && rollbackErr != sql.ErrTxDone {
				logger.Get().Error("failed to rollback transaction", zap.Error(rollbackErr))
			}
			panic(p)
		}
	}()

	txCtx := context.WithValue(ctx, TransactionContextKey, tx)

	if err := fn(txCtx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return fmt.Errorf("failed to rollback transaction: %v (original error: %w)", rollbackErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
