package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReciboNominaRepository struct {
	BaseRepository
}

// newPgxReciboNominaRepository creates a new repository for payroll receipts.
func newPgxReciboNominaRepository(pool *pgxpool.Pool) portsrepo.ReciboNominaRepository {
	return &PgxReciboNominaRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ReciboNominaRepository = (*PgxReciboNominaRepository)(nil)

func (r *PgxReciboNominaRepository) CountFoliosByPrefix(ctx context.Context, tx pgx.Tx, prefix string) (int64, error) {
	return countFoliosByPrefix(ctx, tx, "recibos_nomina", prefix)
}

func (r *PgxReciboNominaRepository) InsertRecibo(ctx context.Context, tx pgx.Tx, rec models.ReciboNomina) (int64, error) {
	query := `
		INSERT INTO recibos_nomina (folio, fecha, empleado_id, periodo_inicio, periodo_fin, salario_base, horas_extra, bonos, deducciones, total_bruto, total_neto)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id;
	`
	var id int64
	err := tx.QueryRow(ctx, query,
		rec.Folio, rec.Fecha, rec.EmpleadoID, rec.PeriodoInicio, rec.PeriodoFin,
		rec.SalarioBase, rec.HorasExtra, rec.Bonos, rec.Deducciones, rec.TotalBruto, rec.TotalNeto,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert recibo de nómina %s: %w", rec.Folio, err)
	}
	return id, nil
}

func (r *PgxReciboNominaRepository) ListRecibos(ctx context.Context) ([]models.ReciboNomina, error) {
	// The employee display name is first name plus paternal surname.
	query := `
		SELECT r.id, r.folio, r.fecha, r.empleado_id, e.nombre || ' ' || e.apellido_paterno,
		       r.periodo_inicio, r.periodo_fin, r.salario_base, r.horas_extra, r.bonos, r.deducciones,
		       r.total_bruto, r.total_neto, r.fecha_creacion
		FROM recibos_nomina r
		LEFT JOIN empleados e ON e.id = r.empleado_id
		ORDER BY r.id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query recibos de nómina: %w", err)
	}
	defer rows.Close()

	recibos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ReciboNomina, error) {
		var rec models.ReciboNomina
		err := row.Scan(&rec.ID, &rec.Folio, &rec.Fecha, &rec.EmpleadoID, &rec.EmpleadoNombre,
			&rec.PeriodoInicio, &rec.PeriodoFin, &rec.SalarioBase, &rec.HorasExtra, &rec.Bonos,
			&rec.Deducciones, &rec.TotalBruto, &rec.TotalNeto, &rec.FechaCreacion)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan recibos de nómina: %w", err)
	}
	return recibos, nil
}
