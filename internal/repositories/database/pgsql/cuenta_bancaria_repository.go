package pgsql

import (
	"context"
	"fmt"

	"github.com/dennysh/Sistema-Contable/internal/apperrors"
	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxCuentaBancariaRepository struct {
	BaseRepository
}

// newPgxCuentaBancariaRepository creates a new repository for bank account data.
func newPgxCuentaBancariaRepository(pool *pgxpool.Pool) portsrepo.CuentaBancariaRepository {
	return &PgxCuentaBancariaRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CuentaBancariaRepository = (*PgxCuentaBancariaRepository)(nil)

func (r *PgxCuentaBancariaRepository) SaveCuenta(ctx context.Context, c models.CuentaBancaria) (int64, error) {
	query := `
		INSERT INTO cuentas_bancarias (nombre, banco, numero_cuenta, saldo_inicial, saldo_actual)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	var id int64
	err := r.Pool.QueryRow(ctx, query, c.Nombre, c.Banco, c.NumeroCuenta, c.SaldoInicial, c.SaldoActual).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert cuenta bancaria: %w", err)
	}
	return id, nil
}

func (r *PgxCuentaBancariaRepository) ListCuentas(ctx context.Context) ([]models.CuentaBancaria, error) {
	query := `
		SELECT id, nombre, banco, numero_cuenta, saldo_inicial, saldo_actual, fecha_apertura
		FROM cuentas_bancarias
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query cuentas bancarias: %w", err)
	}
	defer rows.Close()

	cuentas, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CuentaBancaria, error) {
		var c models.CuentaBancaria
		err := row.Scan(&c.ID, &c.Nombre, &c.Banco, &c.NumeroCuenta, &c.SaldoInicial, &c.SaldoActual, &c.FechaApertura)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan cuentas bancarias: %w", err)
	}
	return cuentas, nil
}

// AplicarMovimientoSaldo adds delta to saldo_actual within the caller's
// transaction. A missing account surfaces as ErrNotFound so the whole
// document transaction rolls back.
func (r *PgxCuentaBancariaRepository) AplicarMovimientoSaldo(ctx context.Context, tx pgx.Tx, cuentaID int64, delta decimal.Decimal) error {
	query := `
		UPDATE cuentas_bancarias
		SET saldo_actual = saldo_actual + $1
		WHERE id = $2;
	`
	tag, err := tx.Exec(ctx, query, delta, cuentaID)
	if err != nil {
		return fmt.Errorf("failed to update saldo for cuenta %d: %w", cuentaID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
