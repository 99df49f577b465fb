package dto

import (
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/shopspring/decimal"
)

type MovimientoRequest struct {
	Cuenta   string          `json:"cuenta" binding:"required"`
	Debe     decimal.Decimal `json:"debe"`
	Haber    decimal.Decimal `json:"haber"`
	Concepto *string         `json:"concepto"`
}

type CreateAsientoRequest struct {
	Fecha       string              `json:"fecha" binding:"required"`
	Concepto    string              `json:"concepto" binding:"required"`
	Estado      string              `json:"estado"`
	Movimientos []MovimientoRequest `json:"movimientos" binding:"required,dive"`
}

type MovimientoResponse struct {
	ID       int64   `json:"id"`
	Cuenta   string  `json:"cuenta"`
	Debe     float64 `json:"debe"`
	Haber    float64 `json:"haber"`
	Concepto *string `json:"concepto"`
}

type AsientoResponse struct {
	ID            int64                `json:"id"`
	Folio         string               `json:"folio"`
	Fecha         string               `json:"fecha"`
	Mes           int                  `json:"mes"`
	Anio          int                  `json:"anio"`
	Concepto      string               `json:"concepto"`
	TotalDebe     float64              `json:"total_debe"`
	TotalHaber    float64              `json:"total_haber"`
	Estado        string               `json:"estado"`
	FechaCreacion string               `json:"fecha_creacion"`
	Movimientos   []MovimientoResponse `json:"movimientos"`
}

type PeriodoResponse struct {
	Anio      int    `json:"anio"`
	Mes       int    `json:"mes"`
	Cantidad  int    `json:"cantidad"`
	NombreMes string `json:"nombre_mes"`
}

func ToAsientoResponses(asientos []models.AsientoContable) []AsientoResponse {
	res := make([]AsientoResponse, len(asientos))
	for i, a := range asientos {
		movs := make([]MovimientoResponse, len(a.Movimientos))
		for j, m := range a.Movimientos {
			movs[j] = MovimientoResponse{
				ID:       m.ID,
				Cuenta:   m.Cuenta,
				Debe:     m.Debe.InexactFloat64(),
				Haber:    m.Haber.InexactFloat64(),
				Concepto: m.Concepto,
			}
		}
		res[i] = AsientoResponse{
			ID:            a.ID,
			Folio:         a.Folio,
			Fecha:         formatFecha(a.Fecha),
			Mes:           a.Mes,
			Anio:          a.Anio,
			Concepto:      a.Concepto,
			TotalDebe:     a.TotalDebe.InexactFloat64(),
			TotalHaber:    a.TotalHaber.InexactFloat64(),
			Estado:        string(a.Estado),
			FechaCreacion: formatTimestamp(a.FechaCreacion),
			Movimientos:   movs,
		}
	}
	return res
}
