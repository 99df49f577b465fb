package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxActivoFijoRepository struct {
	BaseRepository
}

// newPgxActivoFijoRepository creates a new repository for fixed assets.
func newPgxActivoFijoRepository(pool *pgxpool.Pool) portsrepo.ActivoFijoRepository {
	return &PgxActivoFijoRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ActivoFijoRepository = (*PgxActivoFijoRepository)(nil)

func (r *PgxActivoFijoRepository) SaveActivo(ctx context.Context, a models.ActivoFijo) (int64, error) {
	query := `
		INSERT INTO activos_fijos (codigo, nombre, descripcion, categoria, valor_adquisicion, fecha_adquisicion, vida_util_anos, valor_residual, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		a.Codigo, a.Nombre, a.Descripcion, a.Categoria, a.ValorAdquisicion,
		a.FechaAdquisicion, a.VidaUtilAnos, a.ValorResidual, a.Estado,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert activo fijo %s: %w", a.Codigo, err)
	}
	return id, nil
}

func (r *PgxActivoFijoRepository) ListActivos(ctx context.Context) ([]models.ActivoFijo, error) {
	query := `
		SELECT id, codigo, nombre, descripcion, categoria, valor_adquisicion, fecha_adquisicion, vida_util_anos, valor_residual, estado, fecha_registro
		FROM activos_fijos
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query activos fijos: %w", err)
	}
	defer rows.Close()

	activos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ActivoFijo, error) {
		var a models.ActivoFijo
		err := row.Scan(&a.ID, &a.Codigo, &a.Nombre, &a.Descripcion, &a.Categoria, &a.ValorAdquisicion,
			&a.FechaAdquisicion, &a.VidaUtilAnos, &a.ValorResidual, &a.Estado, &a.FechaRegistro)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan activos fijos: %w", err)
	}
	return activos, nil
}
