package dto

import (
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/shopspring/decimal"
)

type CreateActivoFijoRequest struct {
	Codigo           string          `json:"codigo" binding:"required"`
	Nombre           string          `json:"nombre" binding:"required"`
	Descripcion      *string         `json:"descripcion"`
	Categoria        *string         `json:"categoria"`
	ValorAdquisicion decimal.Decimal `json:"valor_adquisicion" binding:"required"`
	FechaAdquisicion string          `json:"fecha_adquisicion" binding:"required"`
	VidaUtilAnos     *int            `json:"vida_util_anos"`
	ValorResidual    decimal.Decimal `json:"valor_residual"`
	Estado           string          `json:"estado"`
}

type ActivoFijoResponse struct {
	ID               int64   `json:"id"`
	Codigo           string  `json:"codigo"`
	Nombre           string  `json:"nombre"`
	Descripcion      *string `json:"descripcion"`
	Categoria        *string `json:"categoria"`
	ValorAdquisicion float64 `json:"valor_adquisicion"`
	FechaAdquisicion string  `json:"fecha_adquisicion"`
	VidaUtilAnos     int     `json:"vida_util_anos"`
	ValorResidual    float64 `json:"valor_residual"`
	Estado           string  `json:"estado"`
}

func ToActivoFijoResponses(activos []models.ActivoFijo) []ActivoFijoResponse {
	res := make([]ActivoFijoResponse, len(activos))
	for i, a := range activos {
		res[i] = ActivoFijoResponse{
			ID:               a.ID,
			Codigo:           a.Codigo,
			Nombre:           a.Nombre,
			Descripcion:      a.Descripcion,
			Categoria:        a.Categoria,
			ValorAdquisicion: a.ValorAdquisicion.InexactFloat64(),
			FechaAdquisicion: formatFecha(a.FechaAdquisicion),
			VidaUtilAnos:     a.VidaUtilAnos,
			ValorResidual:    a.ValorResidual.InexactFloat64(),
			Estado:           string(a.Estado),
		}
	}
	return res
}
