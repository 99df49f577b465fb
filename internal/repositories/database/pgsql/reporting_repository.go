package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type ReportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a repository for dashboard aggregates.
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &ReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReportingRepository = (*ReportingRepository)(nil)

func (r *ReportingRepository) sumQuery(ctx context.Context, query string, args ...any) (decimal.Decimal, error) {
	var sum decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&sum); err != nil {
		return decimal.Zero, err
	}
	return sum, nil
}

func (r *ReportingRepository) SumFacturasVentaPorEstado(ctx context.Context, estado models.FacturaEstado) (decimal.Decimal, error) {
	sum, err := r.sumQuery(ctx, `SELECT COALESCE(SUM(total), 0) FROM facturas_venta WHERE estado = $1;`, estado)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum facturas de venta: %w", err)
	}
	return sum, nil
}

func (r *ReportingRepository) SumFacturasCompraPorEstado(ctx context.Context, estado models.FacturaEstado) (decimal.Decimal, error) {
	sum, err := r.sumQuery(ctx, `SELECT COALESCE(SUM(total), 0) FROM facturas_compra WHERE estado = $1;`, estado)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum facturas de compra: %w", err)
	}
	return sum, nil
}

func (r *ReportingRepository) SumSaldosBancarios(ctx context.Context) (decimal.Decimal, error) {
	sum, err := r.sumQuery(ctx, `SELECT COALESCE(SUM(saldo_actual), 0) FROM cuentas_bancarias;`)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum saldos bancarios: %w", err)
	}
	return sum, nil
}

// SumValorInventario values inventory at purchase price. Items without a
// purchase price contribute nothing.
func (r *ReportingRepository) SumValorInventario(ctx context.Context) (decimal.Decimal, error) {
	sum, err := r.sumQuery(ctx, `SELECT COALESCE(SUM(stock_actual * precio_compra), 0) FROM articulos_inventario;`)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum valor de inventario: %w", err)
	}
	return sum, nil
}

func (r *ReportingRepository) SumActivosFijosActivos(ctx context.Context) (decimal.Decimal, error) {
	sum, err := r.sumQuery(ctx, `SELECT COALESCE(SUM(valor_adquisicion), 0) FROM activos_fijos WHERE estado = $1;`, models.ActivoActivo)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum activos fijos: %w", err)
	}
	return sum, nil
}

func (r *ReportingRepository) CountAll(ctx context.Context) (models.Counts, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM clientes),
			(SELECT COUNT(*) FROM proveedores),
			(SELECT COUNT(*) FROM cuentas_bancarias),
			(SELECT COUNT(*) FROM articulos_inventario),
			(SELECT COUNT(*) FROM facturas_venta),
			(SELECT COUNT(*) FROM facturas_compra),
			(SELECT COUNT(*) FROM recibos),
			(SELECT COUNT(*) FROM pagos),
			(SELECT COUNT(*) FROM empleados),
			(SELECT COUNT(*) FROM recibos_nomina),
			(SELECT COUNT(*) FROM activos_fijos),
			(SELECT COUNT(*) FROM asientos_contables);
	`
	var counts models.Counts
	err := r.Pool.QueryRow(ctx, query).Scan(
		&counts.Clientes,
		&counts.Proveedores,
		&counts.CuentasBancarias,
		&counts.Articulos,
		&counts.FacturasVenta,
		&counts.FacturasCompra,
		&counts.Recibos,
		&counts.Pagos,
		&counts.Empleados,
		&counts.RecibosNomina,
		&counts.ActivosFijos,
		&counts.AsientosContables,
	)
	if err != nil {
		return models.Counts{}, fmt.Errorf("failed to count entities: %w", err)
	}
	return counts, nil
}
