package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFacturaCompraRepository struct {
	BaseRepository
}

// newPgxFacturaCompraRepository creates a new repository for purchase invoices.
func newPgxFacturaCompraRepository(pool *pgxpool.Pool) portsrepo.FacturaCompraRepository {
	return &PgxFacturaCompraRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FacturaCompraRepository = (*PgxFacturaCompraRepository)(nil)

func (r *PgxFacturaCompraRepository) CountFoliosByPrefix(ctx context.Context, tx pgx.Tx, prefix string) (int64, error) {
	return countFoliosByPrefix(ctx, tx, "facturas_compra", prefix)
}

func (r *PgxFacturaCompraRepository) InsertFactura(ctx context.Context, tx pgx.Tx, f models.FacturaCompra) (int64, error) {
	query := `
		INSERT INTO facturas_compra (folio, fecha, proveedor_id, subtotal, iva, total, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	var id int64
	err := tx.QueryRow(ctx, query, f.Folio, f.Fecha, f.ProveedorID, f.Subtotal, f.IVA, f.Total, f.Estado).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert factura de compra %s: %w", f.Folio, err)
	}
	return id, nil
}

func (r *PgxFacturaCompraRepository) InsertDetalles(ctx context.Context, tx pgx.Tx, facturaID int64, detalles []models.DetalleFactura) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO detalles_factura_compra (factura_compra_id, articulo_id, cantidad, precio_unitario, subtotal)
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

func (r *PgxFacturaCompraRepository) SetAsientoID(ctx context.Context, tx pgx.Tx, facturaID, asientoID int64) error {
	_, err := tx.Exec(ctx, `UPDATE facturas_compra SET asiento_id = $1 WHERE id = $2;`, asientoID, facturaID)
	if err != nil {
		return fmt.Errorf("failed to link asiento %d to factura de compra %d: %w", asientoID, facturaID, err)
	}
	return nil
}

func (r *PgxFacturaCompraRepository) ListFacturas(ctx context.Context) ([]models.FacturaCompra, error) {
	query := `
		SELECT f.id, f.folio, f.fecha, f.proveedor_id, p.nombre, f.subtotal, f.iva, f.total, f.estado, f.fecha_creacion
		FROM facturas_compra f
		LEFT JOIN proveedores p ON p.id = f.proveedor_id
		ORDER BY f.id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query facturas de compra: %w", err)
	}
	defer rows.Close()

	facturas, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FacturaCompra, error) {
		var f models.FacturaCompra
		err := row.Scan(&f.ID, &f.Folio, &f.Fecha, &f.ProveedorID, &f.ProveedorNombre,
			&f.Subtotal, &f.IVA, &f.Total, &f.Estado, &f.FechaCreacion)
		return f, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan facturas de compra: %w", err)
	}
	return facturas, nil
}
