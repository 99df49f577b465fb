package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxEmpleadoRepository struct {
	BaseRepository
}

// newPgxEmpleadoRepository creates a new repository for employee data.
func newPgxEmpleadoRepository(pool *pgxpool.Pool) portsrepo.EmpleadoRepository {
	return &PgxEmpleadoRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EmpleadoRepository = (*PgxEmpleadoRepository)(nil)

func (r *PgxEmpleadoRepository) SaveEmpleado(ctx context.Context, e models.Empleado) (int64, error) {
	query := `
		INSERT INTO empleados (nombre, apellido_paterno, apellido_materno, rfc, curp, fecha_nacimiento, salario_diario, puesto, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		e.Nombre, e.ApellidoPaterno, e.ApellidoMaterno, e.RFC, e.CURP,
		e.FechaNacimiento, e.SalarioDiario, e.Puesto, e.Activo,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert empleado: %w", err)
	}
	return id, nil
}

func (r *PgxEmpleadoRepository) ListEmpleados(ctx context.Context) ([]models.Empleado, error) {
	query := `
		SELECT id, nombre, apellido_paterno, apellido_materno, rfc, curp, fecha_nacimiento, fecha_ingreso, salario_diario, puesto, activo
		FROM empleados
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query empleados: %w", err)
	}
	defer rows.Close()

	empleados, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Empleado, error) {
		var e models.Empleado
		err := row.Scan(&e.ID, &e.Nombre, &e.ApellidoPaterno, &e.ApellidoMaterno, &e.RFC, &e.CURP,
			&e.FechaNacimiento, &e.FechaIngreso, &e.SalarioDiario, &e.Puesto, &e.Activo)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan empleados: %w", err)
	}
	return empleados, nil
}
