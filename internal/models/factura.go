package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FacturaEstado indicates the payment state of an invoice.
type FacturaEstado string

const (
	FacturaPendiente FacturaEstado = "Pendiente"
	FacturaPagada    FacturaEstado = "Pagada"
	FacturaCancelada FacturaEstado = "Cancelada"
)

// FacturaVenta is a sales invoice. Creating one also derives exactly one
// asiento contable; the derivation is best-effort and never aborts the invoice.
type FacturaVenta struct {
	ID            int64           `json:"id"`
	Folio         string          `json:"folio"` // Unique, prefix FV
	Fecha         time.Time       `json:"fecha"`
	ClienteID     int64           `json:"cliente_id"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	IVA           decimal.Decimal `json:"iva"`
	Total         decimal.Decimal `json:"total"`
	Estado        FacturaEstado   `json:"estado"`
	FechaCreacion time.Time       `json:"fecha_creacion"`

	// Populated by list queries joining clientes.
	ClienteNombre *string `json:"cliente_nombre,omitempty"`
}

// FacturaCompra is a purchase invoice, symmetric to FacturaVenta.
type FacturaCompra struct {
	ID            int64           `json:"id"`
	Folio         string          `json:"folio"` // Unique, prefix FC
	Fecha         time.Time       `json:"fecha"`
	ProveedorID   int64           `json:"proveedor_id"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	IVA           decimal.Decimal `json:"iva"`
	Total         decimal.Decimal `json:"total"`
	Estado        FacturaEstado   `json:"estado"`
	FechaCreacion time.Time       `json:"fecha_creacion"`

	ProveedorNombre *string `json:"proveedor_nombre,omitempty"`
}

// DetalleFactura is one invoice line. Subtotal is always Cantidad * PrecioUnitario.
// Lines are cascade-deleted with their invoice.
type DetalleFactura struct {
	ID             int64           `json:"id"`
	FacturaID      int64           `json:"factura_id"`
	ArticuloID     int64           `json:"articulo_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}
