package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxArticuloRepository struct {
	BaseRepository
}

// newPgxArticuloRepository creates a new repository for inventory items.
func newPgxArticuloRepository(pool *pgxpool.Pool) portsrepo.ArticuloRepository {
	return &PgxArticuloRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ArticuloRepository = (*PgxArticuloRepository)(nil)

func (r *PgxArticuloRepository) SaveArticulo(ctx context.Context, a models.ArticuloInventario) (int64, error) {
	query := `
		INSERT INTO articulos_inventario (codigo, nombre, descripcion, precio_compra, precio_venta, stock_actual, stock_minimo, unidad_medida)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query,
		a.Codigo, a.Nombre, a.Descripcion, a.PrecioCompra, a.PrecioVenta,
		a.StockActual, a.StockMinimo, a.UnidadMedida,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert articulo %s: %w", a.Codigo, err)
	}
	return id, nil
}

func (r *PgxArticuloRepository) ListArticulos(ctx context.Context) ([]models.ArticuloInventario, error) {
	query := `
		SELECT id, codigo, nombre, descripcion, precio_compra, precio_venta, stock_actual, stock_minimo, unidad_medida, fecha_registro
		FROM articulos_inventario
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query articulos: %w", err)
	}
	defer rows.Close()

	articulos, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ArticuloInventario, error) {
		var a models.ArticuloInventario
		err := row.Scan(&a.ID, &a.Codigo, &a.Nombre, &a.Descripcion, &a.PrecioCompra, &a.PrecioVenta,
			&a.StockActual, &a.StockMinimo, &a.UnidadMedida, &a.FechaRegistro)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan articulos: %w", err)
	}
	return articulos, nil
}
