package repositories

import (
	"context"

	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type ClienteRepository interface {
	SaveCliente(ctx context.Context, c models.Cliente) (int64, error)
	ListClientes(ctx context.Context) ([]models.Cliente, error)
}

type ProveedorRepository interface {
	SaveProveedor(ctx context.Context, p models.Proveedor) (int64, error)
	ListProveedores(ctx context.Context) ([]models.Proveedor, error)
}

type CuentaBancariaRepository interface {
	SaveCuenta(ctx context.Context, c models.CuentaBancaria) (int64, error)
	ListCuentas(ctx context.Context) ([]models.CuentaBancaria, error)
	// AplicarMovimientoSaldo adds delta (negative for pagos) to saldo_actual
	// within the caller's transaction.
	AplicarMovimientoSaldo(ctx context.Context, tx pgx.Tx, cuentaID int64, delta decimal.Decimal) error
}

type ArticuloRepository interface {
	SaveArticulo(ctx context.Context, a models.ArticuloInventario) (int64, error)
	ListArticulos(ctx context.Context) ([]models.ArticuloInventario, error)
}

type EmpleadoRepository interface {
	SaveEmpleado(ctx context.Context, e models.Empleado) (int64, error)
	ListEmpleados(ctx context.Context) ([]models.Empleado, error)
}

type ActivoFijoRepository interface {
	SaveActivo(ctx context.Context, a models.ActivoFijo) (int64, error)
	ListActivos(ctx context.Context) ([]models.ActivoFijo, error)
}
