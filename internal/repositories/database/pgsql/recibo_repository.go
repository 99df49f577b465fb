package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReciboRepository struct {
	BaseRepository
}

// newPgxReciboRepository creates a new repository for client receipts.
func newPgxReciboRepository(pool *pgxpool.Pool) portsrepo.ReciboRepository {
	return &PgxReciboRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReciboRepository = (*PgxReciboRepository)(nil)

func (r *PgxReciboRepository) CountFoliosByPrefix(ctx context.Context, tx pgx.Tx, prefix string) (int64, error) {
	return countFoliosByPrefix(ctx, tx, "recibos", prefix)
}

func (r *PgxReciboRepository) InsertRecibo(ctx context.Context, tx pgx.Tx, rec models.Recibo) (int64, error) {
	query := `
		INSERT INTO recibos (folio, fecha, cliente_id, factura_venta_id, cuenta_bancaria_id, monto, concepto, metodo_pago)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	var id int64
	err := tx.QueryRow(ctx, query,
		rec.Folio, rec.Fecha, rec.ClienteID, rec.FacturaVentaID,
		rec.CuentaBancariaID, rec.Monto, rec.Concepto, rec.MetodoPago,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert recibo %s: %w", rec.Folio, err)
	}
	return id, nil
}

func (r *PgxReciboRepository) ListRecibos(ctx context.Context) ([]models.Recibo, error) {
	query := `
		SELECT r.id, r.folio, r.fecha, r.cliente_id, c.nombre, r.factura_venta_id, r.cuenta_bancaria_id, r.monto, r.concepto, r.metodo_pago, r.fecha_creacion
		FROM recibos r
		LEFT JOIN clientes c ON c.id = r.cliente_id
		ORDER BY r.id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query recibos: %w", err)
	}
	defer rows.Close()

	recibos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Recibo, error) {
		var rec models.Recibo
		err := row.Scan(&rec.ID, &rec.Folio, &rec.Fecha, &rec.ClienteID, &rec.ClienteNombre,
			&rec.FacturaVentaID, &rec.CuentaBancariaID, &rec.Monto, &rec.Concepto, &rec.MetodoPago, &rec.FechaCreacion)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan recibos: %w", err)
	}
	return recibos, nil
}
