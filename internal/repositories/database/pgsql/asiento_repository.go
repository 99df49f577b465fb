package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAsientoRepository struct {
	BaseRepository
}

// newPgxAsientoRepository creates a new repository for journal entries and
// their movements.
func newPgxAsientoRepository(pool *pgxpool.Pool) portsrepo.AsientoRepository {
	return &PgxAsientoRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AsientoRepository = (*PgxAsientoRepository)(nil)

func (r *PgxAsientoRepository) CountFoliosByPrefix(ctx context.Context, tx pgx.Tx, prefix string) (int64, error) {
	return countFoliosByPrefix(ctx, tx, "asientos_contables", prefix)
}

func (r *PgxAsientoRepository) InsertAsiento(ctx context.Context, tx pgx.Tx, a models.AsientoContable) (int64, error) {
	query := `
		INSERT INTO asientos_contables (folio, fecha, mes, anio, concepto, total_debe, total_haber, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	var id int64
	err := tx.QueryRow(ctx, query,
		a.Folio, a.Fecha, a.Mes, a.Anio, a.Concepto, a.TotalDebe, a.TotalHaber, a.Estado,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert asiento %s: %w", a.Folio, err)
	}
	return id, nil
}

func (r *PgxAsientoRepository) InsertMovimientos(ctx context.Context, tx pgx.Tx, asientoID int64, movimientos []models.MovimientoContable) error {
	batch := &pgx.Batch{}
	query := `
		INSERT INTO movimientos_contables (asiento_id, cuenta, debe, haber, concepto)
		VALUES ($1, $2, $3, $4, $5);
	`
	for _, m := range movimientos {
		batch.Queue(query, asientoID, m.Cuenta, m.Debe, m.Haber, m.Concepto)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range movimientos {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert movimiento for asiento %d: %w", asientoID, err)
		}
	}
	return nil
}

func (r *PgxAsientoRepository) ListAsientos(ctx context.Context, mes, anio *int) ([]models.AsientoContable, error) {
	query := `
		SELECT id, folio, fecha, mes, anio, concepto, total_debe, total_haber, estado, fecha_creacion
		FROM asientos_contables
		WHERE ($1::int IS NULL OR mes = $1)
		  AND ($2::int IS NULL OR anio = $2)
		ORDER BY fecha DESC, id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, mes, anio)
	if err != nil {
		return nil, fmt.Errorf("failed to query asientos: %w", err)
	}
	defer rows.Close()

	asientos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AsientoContable, error) {
		var a models.AsientoContable
		err := row.Scan(&a.ID, &a.Folio, &a.Fecha, &a.Mes, &a.Anio, &a.Concepto,
			&a.TotalDebe, &a.TotalHaber, &a.Estado, &a.FechaCreacion)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan asientos: %w", err)
	}
	return asientos, nil
}

// FindMovimientosByAsientoIDs fetches movements for a batch of entries in one
// query and groups them by asiento.
func (r *PgxAsientoRepository) FindMovimientosByAsientoIDs(ctx context.Context, asientoIDs []int64) (map[int64][]models.MovimientoContable, error) {
	query := `
		SELECT id, asiento_id, cuenta, debe, haber, concepto
		FROM movimientos_contables
		WHERE asiento_id = ANY($1)
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query, asientoIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query movimientos: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]models.MovimientoContable, len(asientoIDs))
	for rows.Next() {
		var m models.MovimientoContable
		if err := rows.Scan(&m.ID, &m.AsientoID, &m.Cuenta, &m.Debe, &m.Haber, &m.Concepto); err != nil {
			return nil, fmt.Errorf("failed to scan movimiento: %w", err)
		}
		result[m.AsientoID] = append(result[m.AsientoID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read movimientos: %w", err)
	}
	return result, nil
}

func (r *PgxAsientoRepository) ListPeriodos(ctx context.Context) ([]models.Periodo, error) {
	query := `
		SELECT anio, mes, COUNT(id) AS cantidad
		FROM asientos_contables
		GROUP BY anio, mes
		ORDER BY anio DESC, mes DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query periodos: %w", err)
	}
	defer rows.Close()

	periodos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Periodo, error) {
		var p models.Periodo
		err := row.Scan(&p.Anio, &p.Mes, &p.Cantidad)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan periodos: %w", err)
	}
	return periodos, nil
}
