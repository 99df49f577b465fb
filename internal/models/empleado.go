package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Empleado is an employee eligible for payroll receipts.
type Empleado struct {
	ID              int64            `json:"id"`
	Nombre          string           `json:"nombre"`
	ApellidoPaterno string           `json:"apellido_paterno"`
	ApellidoMaterno *string          `json:"apellido_materno"`
	RFC             *string          `json:"rfc"`  // Unique
	CURP            *string          `json:"curp"` // Unique
	FechaNacimiento *time.Time       `json:"fecha_nacimiento"`
	FechaIngreso    time.Time        `json:"fecha_ingreso"`
	SalarioDiario   *decimal.Decimal `json:"salario_diario"`
	Puesto          *string          `json:"puesto"`
	Activo          bool             `json:"activo"`
}
