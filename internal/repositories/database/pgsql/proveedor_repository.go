package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProveedorRepository struct {
	BaseRepository
}

// newPgxProveedorRepository creates a new repository for supplier data.
func newPgxProveedorRepository(pool *pgxpool.Pool) portsrepo.ProveedorRepository {
	return &PgxProveedorRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProveedorRepository = (*PgxProveedorRepository)(nil)

func (r *PgxProveedorRepository) SaveProveedor(ctx context.Context, p models.Proveedor) (int64, error) {
	query := `
		INSERT INTO proveedores (nombre, rfc, direccion, telefono, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query, p.Nombre, p.RFC, p.Direccion, p.Telefono, p.Email).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert proveedor: %w", err)
	}
	return id, nil
}

func (r *PgxProveedorRepository) ListProveedores(ctx context.Context) ([]models.Proveedor, error) {
	query := `
		SELECT id, nombre, rfc, direccion, telefono, email, fecha_registro
		FROM proveedores
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query proveedores: %w", err)
	}
	defer rows.Close()

	proveedores, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Proveedor, error) {
		var p models.Proveedor
		err := row.Scan(&p.ID, &p.Nombre, &p.RFC, &p.Direccion, &p.Telefono, &p.Email, &p.FechaRegistro)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan proveedores: %w", err)
	}
	return proveedores, nil
}
