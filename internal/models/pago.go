package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pago is money paid to a supplier from a bank account.
// Posting one subtracts Monto from the account's saldo_actual in the same transaction.
type Pago struct {
	ID               int64           `json:"id"`
	Folio            string          `json:"folio"` // Unique, prefix PG
	Fecha            time.Time       `json:"fecha"`
	ProveedorID      int64           `json:"proveedor_id"`
	FacturaCompraID  *int64          `json:"factura_compra_id"`
	CuentaBancariaID int64           `json:"cuenta_bancaria_id"`
	Monto            decimal.Decimal `json:"monto"`
	Concepto         *string         `json:"concepto"`
	MetodoPago       string          `json:"metodo_pago"`
	FechaCreacion    time.Time       `json:"fecha_creacion"`

	ProveedorNombre *string `json:"proveedor_nombre,omitempty"`
}
