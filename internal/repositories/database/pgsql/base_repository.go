package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dennysh/Sistema-Contable/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, sql.ErrTxDone) && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// countFoliosByPrefix counts folios starting with prefix in the given table,
// within the caller's transaction. The table name is always a compile-time
// constant supplied by the owning repository.
func countFoliosByPrefix(ctx context.Context, tx pgx.Tx, table, prefix string) (int64, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE folio LIKE $1 || '%%';`, table)
	var count int64
	if err := tx.QueryRow(ctx, query, prefix).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count folios in %s: %w", table, err)
	}
	return count, nil
}
