package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFacturaVentaRepository struct {
	BaseRepository
}

// newPgxFacturaVentaRepository creates a new repository for sales invoices.
func newPgxFacturaVentaRepository(pool *pgxpool.Pool) portsrepo.FacturaVentaRepository {
	return &PgxFacturaVentaRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FacturaVentaRepository = (*PgxFacturaVentaRepository)(nil)

func (r *PgxFacturaVentaRepository) CountFoliosByPrefix(ctx context.Context, tx pgx.Tx, prefix string) (int64, error) {
	return countFoliosByPrefix(ctx, tx, "facturas_venta", prefix)
}

func (r *PgxFacturaVentaRepository) InsertFactura(ctx context.Context, tx pgx.Tx, f models.FacturaVenta) (int64, error) {
	query := `
		INSERT INTO facturas_venta (folio, fecha, cliente_id, subtotal, iva, total, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	var id int64
	err := tx.QueryRow(ctx, query, f.Folio, f.Fecha, f.ClienteID, f.Subtotal, f.IVA, f.Total, f.Estado).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert factura de venta %s: %w", f.Folio, err)
	}
	return id, nil
}

func (r *PgxFacturaVentaRepository) InsertDetalles(ctx context.Context, tx pgx.Tx, facturaID int64, detalles []models.DetalleFactura) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO detalles_factura_venta (factura_venta_id, articulo_id, cantidad, precio_unitario, subtotal)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, d := range detalles {
		batch.Queue(query, facturaID, d.ArticuloID, d.Cantidad, d.PrecioUnitario, d.Subtotal)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range detalles {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert detalle for factura %d: %w", facturaID, err)
		}
	}
	return nil
}

func (r *PgxFacturaVentaRepository) SetAsientoID(ctx context.Context, tx pgx.Tx, facturaID, asientoID int64) error {
	_, err := tx.Exec(ctx, `UPDATE facturas_venta SET asiento_id = $1 WHERE id = $2;`, asientoID, facturaID)
	if err != nil {
		return fmt.Errorf("failed to link asiento %d to factura de venta %d: %w", asientoID, facturaID, err)
	}
	return nil
}

func (r *PgxFacturaVentaRepository) ListFacturas(ctx context.Context) ([]models.FacturaVenta, error) {
	query := `
		SELECT f.id, f.folio, f.fecha, f.cliente_id, c.nombre, f.subtotal, f.iva, f.total, f.estado, f.fecha_creacion
		FROM facturas_venta f
		LEFT JOIN clientes c ON c.id = f.cliente_id
		ORDER BY f.id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query facturas de venta: %w", err)
	}
	defer rows.Close()

	facturas, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FacturaVenta, error) {
		var f models.FacturaVenta
		err := row.Scan(&f.ID, &f.Folio, &f.Fecha, &f.ClienteID, &f.ClienteNombre,
			&f.Subtotal, &f.IVA, &f.Total, &f.Estado, &f.FechaCreacion)
		return f, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan facturas de venta: %w", err)
	}
	return facturas, nil
}
