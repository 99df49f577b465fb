package repositories

import (
	"context"

	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/shopspring/decimal"
)

type ReportingRepository interface {
	SumFacturasVentaPorEstado(ctx context.Context, estado models.FacturaEstado) (decimal.Decimal, error)
	SumFacturasCompraPorEstado(ctx context.Context, estado models.FacturaEstado) (decimal.Decimal, error)
	SumSaldosBancarios(ctx context.Context) (decimal.Decimal, error)
	SumValorInventario(ctx context.Context) (decimal.Decimal, error)
	SumActivosFijosActivos(ctx context.Context) (decimal.Decimal, error)
	CountAll(ctx context.Context) (models.Counts, error)
}
