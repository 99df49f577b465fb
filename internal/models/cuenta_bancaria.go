package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CuentaBancaria holds a running balance mutated only by recibos and pagos.
// There is no mutation history; saldo_actual is the only truth.
type CuentaBancaria struct {
	ID            int64           `json:"id"`
	Nombre        string          `json:"nombre"`
	Banco         string          `json:"banco"`
	NumeroCuenta  string          `json:"numero_cuenta"` // Unique
	SaldoInicial  decimal.Decimal `json:"saldo_inicial"`
	SaldoActual   decimal.Decimal `json:"saldo_actual"`
	FechaApertura time.Time       `json:"fecha_apertura"`
}
