package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReciboNomina is a payroll receipt. TotalBruto and TotalNeto are derived:
// bruto = salario_base + horas_extra * (salario_base / 8) + bonos,
// neto = bruto - deducciones. Payroll produces no asiento contable.
type ReciboNomina struct {
	ID             int64           `json:"id"`
	Folio          string          `json:"folio"` // Unique, prefix RN
	Fecha          time.Time       `json:"fecha"`
	EmpleadoID     int64           `json:"empleado_id"`
	PeriodoInicio  time.Time       `json:"periodo_inicio"`
	PeriodoFin     time.Time       `json:"periodo_fin"`
	SalarioBase    decimal.Decimal `json:"salario_base"`
	HorasExtra     decimal.Decimal `json:"horas_extra"`
	Bonos          decimal.Decimal `json:"bonos"`
	Deducciones    decimal.Decimal `json:"deducciones"`
	TotalBruto     decimal.Decimal `json:"total_bruto"`
	TotalNeto      decimal.Decimal `json:"total_neto"`
	FechaCreacion  time.Time       `json:"fecha_creacion"`

	EmpleadoNombre *string `json:"empleado_nombre,omitempty"`
}
