package repositories

import (
	"context"

	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/jackc/pgx/v5"
)

type AsientoRepository interface {
	TxManager
	FolioCounter
	InsertAsiento(ctx context.Context, tx pgx.Tx, a models.AsientoContable) (int64, error)
	InsertMovimientos(ctx context.Context, tx pgx.Tx, asientoID int64, movimientos []models.MovimientoContable) error
	// ListAsientos filters by month and/or year when provided, newest fecha first.
	ListAsientos(ctx context.Context, mes, anio *int) ([]models.AsientoContable, error)
	FindMovimientosByAsientoIDs(ctx context.Context, asientoIDs []int64) (map[int64][]models.MovimientoContable, error)
	ListPeriodos(ctx context.Context) ([]models.Periodo, error)
}
