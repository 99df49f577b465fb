package dto

import (
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/shopspring/decimal"
)

type CreateEmpleadoRequest struct {
	Nombre          string           `json:"nombre" binding:"required"`
	ApellidoPaterno string           `json:"apellido_paterno" binding:"required"`
	ApellidoMaterno *string          `json:"apellido_materno"`
	RFC             *string          `json:"rfc"`
	CURP            *string          `json:"curp"`
	FechaNacimiento *string          `json:"fecha_nacimiento"`
	SalarioDiario   *decimal.Decimal `json:"salario_diario"`
	Puesto          *string          `json:"puesto"`
	Activo          *bool            `json:"activo"`
}

type EmpleadoResponse struct {
	ID              int64    `json:"id"`
	Nombre          string   `json:"nombre"`
	ApellidoPaterno string   `json:"apellido_paterno"`
	ApellidoMaterno *string  `json:"apellido_materno"`
	RFC             *string  `json:"rfc"`
	CURP            *string  `json:"curp"`
	FechaNacimiento *string  `json:"fecha_nacimiento"`
	FechaIngreso    string   `json:"fecha_ingreso"`
	SalarioDiario   *float64 `json:"salario_diario"`
	Puesto          *string  `json:"puesto"`
	Activo          bool     `json:"activo"`
}

func ToEmpleadoResponses(empleados []models.Empleado) []EmpleadoResponse {
	res := make([]EmpleadoResponse, len(empleados))
	for i, e := range empleados {
		res[i] = EmpleadoResponse{
			ID:              e.ID,
			Nombre:          e.Nombre,
			ApellidoPaterno: e.ApellidoPaterno,
			ApellidoMaterno: e.ApellidoMaterno,
			RFC:             e.RFC,
			CURP:            e.CURP,
			FechaNacimiento: formatFechaPtr(e.FechaNacimiento),
			FechaIngreso:    formatFecha(e.FechaIngreso),
			SalarioDiario:   decimalPtrToFloat(e.SalarioDiario),
			Puesto:          e.Puesto,
			Activo:          e.Activo,
		}
	}
	return res
}
