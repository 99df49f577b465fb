package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClienteRepository struct {
	BaseRepository
}

// newPgxClienteRepository creates a new repository for customer data.
func newPgxClienteRepository(pool *pgxpool.Pool) portsrepo.ClienteRepository {
	return &PgxClienteRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ClienteRepository = (*PgxClienteRepository)(nil)

func (r *PgxClienteRepository) SaveCliente(ctx context.Context, c models.Cliente) (int64, error) {
	query := `
		INSERT INTO clientes (nombre, rfc, direccion, telefono, email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query, c.Nombre, c.RFC, c.Direccion, c.Telefono, c.Email).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert cliente: %w", err)
	}
	return id, nil
}

func (r *PgxClienteRepository) ListClientes(ctx context.Context) ([]models.Cliente, error) {
	query := `
		SELECT id, nombre, rfc, direccion, telefono, email, fecha_registro
		FROM clientes
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clientes: %w", err)
	}
	defer rows.Close()

	clientes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Cliente, error) {
		var c models.Cliente
		err := row.Scan(&c.ID, &c.Nombre, &c.RFC, &c.Direccion, &c.Telefono, &c.Email, &c.FechaRegistro)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan clientes: %w", err)
	}
	return clientes, nil
}
