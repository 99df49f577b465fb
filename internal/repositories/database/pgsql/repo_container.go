package pgsql

import (
	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ClienteRepo:        newPgxClienteRepository(dbPool),
		ProveedorRepo:      newPgxProveedorRepository(dbPool),
		CuentaBancariaRepo: newPgxCuentaBancariaRepository(dbPool),
		ArticuloRepo:       newPgxArticuloRepository(dbPool),
		EmpleadoRepo:       newPgxEmpleadoRepository(dbPool),
		ActivoFijoRepo:     newPgxActivoFijoRepository(dbPool),
		FacturaVentaRepo:   newPgxFacturaVentaRepository(dbPool),
		FacturaCompraRepo:  newPgxFacturaCompraRepository(dbPool),
		ReciboRepo:         newPgxReciboRepository(dbPool),
		PagoRepo:           newPgxPagoRepository(dbPool),
		ReciboNominaRepo:   newPgxReciboNominaRepository(dbPool),
		AsientoRepo:        newPgxAsientoRepository(dbPool),
		ReportingRepo:      newReportingRepository(dbPool),
	}
}
