package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Executor is satisfied by both *sql.DB and *sql.Tx, so a repository call
// runs against the pool or inside an explicit transaction depending on what
// it is handed.
type Executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TxRunner is the transaction boundary the service layer works against.
// Every unit of work receives an explicit executor; nothing falls back to an
// implicit pool connection.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(exec Executor) error) error
}

// Runner implements TxRunner on top of a *sql.DB.
type Runner struct {
	db *sql.DB
}

func NewRunner(conn *sql.DB) *Runner {
	return &Runner{db: conn}
}

// RunInTx executes fn inside a transaction. If fn returns an error the
// transaction rolls back and the error is returned; otherwise it commits.
func (r *Runner) RunInTx(ctx context.Context, fn func(exec Executor) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
