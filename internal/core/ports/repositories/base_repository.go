package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxManager exposes transaction boundaries so services can make the unit of
// work for a document explicit: folio generation, inserts and balance mutation
// for one request commit or roll back together.
type TxManager interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Commit(ctx context.Context, tx pgx.Tx) error
	Rollback(ctx context.Context, tx pgx.Tx) error
}

// FolioCounter counts existing folios matching a prefix within the caller's
// transaction. The read-count-then-insert sequence is not serialized against
// concurrent requests; duplicates surface as unique-constraint errors.
type FolioCounter interface {
	CountFoliosByPrefix(ctx context.Context, tx pgx.Tx, prefix string) (int64, error)
}
