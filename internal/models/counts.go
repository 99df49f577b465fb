package models

// Counts holds per-entity row counts for the sidebar badges.
type Counts struct {
	Clientes          int64 `json:"clientes"`
	Proveedores       int64 `json:"proveedores"`
	CuentasBancarias  int64 `json:"cuentas_bancarias"`
	Articulos         int64 `json:"articulos"`
	FacturasVenta     int64 `json:"facturas_venta"`
	FacturasCompra    int64 `json:"facturas_compra"`
	Recibos           int64 `json:"recibos"`
	Pagos             int64 `json:"pagos"`
	Empleados         int64 `json:"empleados"`
	RecibosNomina     int64 `json:"recibos_nomina"`
	ActivosFijos      int64 `json:"activos_fijos"`
	AsientosContables int64 `json:"asientos_contables"`
}
