package services

import (
	"context"
	"fmt"
	"time"

	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

// GenerateFolio builds the next folio for a document prefix, e.g. FV20240115001.
// The sequence restarts every day. The count is taken within the caller's
// transaction; two concurrent requests can still observe the same count and
// produce the same folio, which the unique constraint on folio then rejects.
func GenerateFolio(ctx context.Context, tx pgx.Tx, counter portsrepo.FolioCounter, prefix string) (string, error) {
	datePrefix := prefix + time.Now().Format("20060102")
	count, err := counter.CountFoliosByPrefix(ctx, tx, datePrefix)
	if err != nil {
		return "", fmt.Errorf("failed to count folios for prefix %s: %w", datePrefix, err)
	}
	return fmt.Sprintf("%s%03d", datePrefix, count+1), nil
}
