package repositories

// RepositoryProvider groups every repository implementation for injection
// into the service container.
type RepositoryProvider struct {
	ClienteRepo        ClienteRepository
	ProveedorRepo      ProveedorRepository
	CuentaBancariaRepo CuentaBancariaRepository
	ArticuloRepo       ArticuloRepository
	EmpleadoRepo       EmpleadoRepository
	ActivoFijoRepo     ActivoFijoRepository
	FacturaVentaRepo   FacturaVentaRepository
	FacturaCompraRepo  FacturaCompraRepository
	ReciboRepo         ReciboRepository
	PagoRepo           PagoRepository
	ReciboNominaRepo   ReciboNominaRepository
	AsientoRepo        AsientoRepository
	ReportingRepo      ReportingRepository
}
