package dto

import (
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/shopspring/decimal"
)

type CreateReciboNominaRequest struct {
	Fecha         string          `json:"fecha" binding:"required"`
	EmpleadoID    int64           `json:"empleado_id" binding:"required"`
	PeriodoInicio string          `json:"periodo_inicio" binding:"required"`
	PeriodoFin    string          `json:"periodo_fin" binding:"required"`
	SalarioBase   decimal.Decimal `json:"salario_base" binding:"required"`
	HorasExtra    decimal.Decimal `json:"horas_extra"`
	Bonos         decimal.Decimal `json:"bonos"`
	Deducciones   decimal.Decimal `json:"deducciones"`
}

type ReciboNominaResponse struct {
	ID             int64   `json:"id"`
	Folio          string  `json:"folio"`
	Fecha          string  `json:"fecha"`
	EmpleadoNombre *string `json:"empleado_nombre"`
	PeriodoInicio  string  `json:"periodo_inicio"`
	PeriodoFin     string  `json:"periodo_fin"`
	TotalBruto     float64 `json:"total_bruto"`
	TotalNeto      float64 `json:"total_neto"`
}

func ToReciboNominaResponses(recibos []models.ReciboNomina) []ReciboNominaResponse {
	res := make([]ReciboNominaResponse, len(recibos))
	for i, r := range recibos {
		res[i] = ReciboNominaResponse{
			ID:             r.ID,
			Folio:          r.Folio,
			Fecha:          formatFecha(r.Fecha),
			EmpleadoNombre: r.EmpleadoNombre,
			PeriodoInicio:  formatFecha(r.PeriodoInicio),
			PeriodoFin:     formatFecha(r.PeriodoFin),
			TotalBruto:     r.TotalBruto.InexactFloat64(),
			TotalNeto:      r.TotalNeto.InexactFloat64(),
		}
	}
	return res
}
