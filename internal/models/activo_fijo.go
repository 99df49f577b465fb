package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActivoEstado indicates the lifecycle state of a fixed asset.
type ActivoEstado string

const (
	ActivoActivo  ActivoEstado = "Activo"
	ActivoVendido ActivoEstado = "Vendido"
	ActivoBaja    ActivoEstado = "Dado de baja"
)

// ActivoFijo is a fixed asset. No depreciation schedule is computed anywhere;
// the dashboard uses the raw acquisition value.
type ActivoFijo struct {
	ID               int64           `json:"id"`
	Codigo           string          `json:"codigo"` // Unique
	Nombre           string          `json:"nombre"`
	Descripcion      *string         `json:"descripcion"`
	Categoria        *string         `json:"categoria"` // Equipo de computo, Mobiliario, Vehiculos, etc.
	ValorAdquisicion decimal.Decimal `json:"valor_adquisicion"`
	FechaAdquisicion time.Time       `json:"fecha_adquisicion"`
	VidaUtilAnos     int             `json:"vida_util_anos"`
	ValorResidual    decimal.Decimal `json:"valor_residual"`
	Estado           ActivoEstado    `json:"estado"`
	FechaRegistro    time.Time       `json:"fecha_registro"`
}
