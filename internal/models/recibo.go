package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recibo is money received from a client into a bank account.
// Posting one adds Monto to the account's saldo_actual in the same transaction.
type Recibo struct {
	ID               int64           `json:"id"`
	Folio            string          `json:"folio"` // Unique, prefix RC
	Fecha            time.Time       `json:"fecha"`
	ClienteID        int64           `json:"cliente_id"`
	FacturaVentaID   *int64          `json:"factura_venta_id"`
	CuentaBancariaID int64           `json:"cuenta_bancaria_id"`
	Monto            decimal.Decimal `json:"monto"`
	Concepto         *string         `json:"concepto"`
	MetodoPago       string          `json:"metodo_pago"` // Efectivo, Transferencia, Cheque
	FechaCreacion    time.Time       `json:"fecha_creacion"`

	ClienteNombre *string `json:"cliente_nombre,omitempty"`
}
