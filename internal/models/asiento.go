package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AsientoEstado indicates the state of a journal entry.
type AsientoEstado string

const (
	AsientoBorrador  AsientoEstado = "Borrador"
	AsientoAplicado  AsientoEstado = "Aplicado"
	AsientoCancelado AsientoEstado = "Cancelado"
)

// Ledger account names used by derived entries. Accounts are free-text names,
// not a normalized chart of accounts; this constant set covers the automatic
// movements, manual entries may name any account.
const (
	CuentaPorCobrar      = "Cuentas por Cobrar"
	CuentaVentas         = "Ventas"
	CuentaIVAPorPagar    = "IVA por Pagar"
	CuentaCompras        = "Compras"
	CuentaIVAAcreditable = "IVA Acreditable"
	CuentaPorPagar       = "Cuentas por Pagar"
)

// AsientoContable is a double-entry journal entry. TotalDebe must equal
// TotalHaber; unbalanced entries are rejected before any persistence.
type AsientoContable struct {
	ID            int64           `json:"id"`
	Folio         string          `json:"folio"` // Unique, prefix AC
	Fecha         time.Time       `json:"fecha"`
	Mes           int             `json:"mes"`  // 1-12, derived from Fecha
	Anio          int             `json:"anio"` // Derived from Fecha
	Concepto      string          `json:"concepto"`
	TotalDebe     decimal.Decimal `json:"total_debe"`
	TotalHaber    decimal.Decimal `json:"total_haber"`
	Estado        AsientoEstado   `json:"estado"`
	FechaCreacion time.Time       `json:"fecha_creacion"`

	// Loaded separately; cascade-deleted with the asiento.
	Movimientos []MovimientoContable `json:"movimientos"`
}

// MovimientoContable is one debit-or-credit line within an asiento.
// Conventionally exactly one of Debe/Haber is non-zero, but this is not enforced.
type MovimientoContable struct {
	ID        int64           `json:"id"`
	AsientoID int64           `json:"asiento_id"`
	Cuenta    string          `json:"cuenta"`
	Debe      decimal.Decimal `json:"debe"`
	Haber     decimal.Decimal `json:"haber"`
	Concepto  *string         `json:"concepto"`
}

// Periodo is one distinct (anio, mes) bucket with its entry count.
type Periodo struct {
	Anio     int `json:"anio"`
	Mes      int `json:"mes"`
	Cantidad int `json:"cantidad"`
}
