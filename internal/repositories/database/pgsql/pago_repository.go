package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPagoRepository struct {
	BaseRepository
}

// newPgxPagoRepository creates a new repository for supplier payments.
func newPgxPagoRepository(pool *pgxpool.Pool) portsrepo.PagoRepository {
	return &PgxPagoRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.PagoRepository = (*PgxPagoRepository)(nil)

func (r *PgxPagoRepository) CountFoliosByPrefix(ctx context.Context, tx pgx.Tx, prefix string) (int64, error) {
	return countFoliosByPrefix(ctx, tx, "pagos", prefix)
}

func (r *PgxPagoRepository) InsertPago(ctx context.Context, tx pgx.Tx, p models.Pago) (int64, error) {
	query := `
		INSERT INTO pagos (folio, fecha, proveedor_id, factura_compra_id, cuenta_bancaria_id, monto, concepto, metodo_pago)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	var id int64
	err := tx.QueryRow(ctx, query,
		p.Folio, p.Fecha, p.ProveedorID, p.FacturaCompraID,
		p.CuentaBancariaID, p.Monto, p.Concepto, p.MetodoPago,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert pago %s: %w", p.Folio, err)
	}
	return id, nil
}

func (r *PgxPagoRepository) ListPagos(ctx context.Context) ([]models.Pago, error) {
	query := `
		SELECT p.id, p.folio, p.fecha, p.proveedor_id, pr.nombre, p.factura_compra_id, p.cuenta_bancaria_id, p.monto, p.concepto, p.metodo_pago, p.fecha_creacion
		FROM pagos p
		LEFT JOIN proveedores pr ON pr.id = p.proveedor_id
		ORDER BY p.id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query pagos: %w", err)
	}
	defer rows.Close()

	pagos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Pago, error) {
		var p models.Pago
		err := row.Scan(&p.ID, &p.Folio, &p.Fecha, &p.ProveedorID, &p.ProveedorNombre,
			&p.FacturaCompraID, &p.CuentaBancariaID, &p.Monto, &p.Concepto, &p.MetodoPago, &p.FechaCreacion)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan pagos: %w", err)
	}
	return pagos, nil
}
