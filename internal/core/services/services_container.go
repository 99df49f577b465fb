package services

import (
	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
)

// ServiceContainer groups every service for injection into the handlers.
type ServiceContainer struct {
	Cliente        *ClienteService
	Proveedor      *ProveedorService
	CuentaBancaria *CuentaBancariaService
	Articulo       *ArticuloService
	Empleado       *EmpleadoService
	ActivoFijo     *ActivoFijoService
	FacturaVenta   *FacturaVentaService
	FacturaCompra  *FacturaCompraService
	Recibo         *ReciboService
	Pago           *PagoService
	Nomina         *NominaService
	Asiento        *AsientoService
	Dashboard      *DashboardService
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *ServiceContainer {
	container := &ServiceContainer{}

	// The asiento service goes first since invoice creation depends on it
	container.Asiento = NewAsientoService(repos.AsientoRepo)

	container.Cliente = NewClienteService(repos.ClienteRepo)
	container.Proveedor = NewProveedorService(repos.ProveedorRepo)
	container.CuentaBancaria = NewCuentaBancariaService(repos.CuentaBancariaRepo)
	container.Articulo = NewArticuloService(repos.ArticuloRepo)
	container.Empleado = NewEmpleadoService(repos.EmpleadoRepo)
	container.ActivoFijo = NewActivoFijoService(repos.ActivoFijoRepo)
	container.FacturaVenta = NewFacturaVentaService(repos.FacturaVentaRepo, container.Asiento)
	container.FacturaCompra = NewFacturaCompraService(repos.FacturaCompraRepo, container.Asiento)
	container.Recibo = NewReciboService(repos.ReciboRepo, repos.CuentaBancariaRepo)
	container.Pago = NewPagoService(repos.PagoRepo, repos.CuentaBancariaRepo)
	container.Nomina = NewNominaService(repos.ReciboNominaRepo)
	container.Dashboard = NewDashboardService(repos.ReportingRepo)

	return container
}
