package dto

import (
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/shopspring/decimal"
)

type CreateReciboRequest struct {
	Fecha            string          `json:"fecha" binding:"required"`
	ClienteID        int64           `json:"cliente_id" binding:"required"`
	FacturaVentaID   *int64          `json:"factura_venta_id"`
	CuentaBancariaID int64           `json:"cuenta_bancaria_id" binding:"required"`
	Monto            decimal.Decimal `json:"monto" binding:"required"`
	Concepto         *string         `json:"concepto"`
	MetodoPago       string          `json:"metodo_pago"`
}

type ReciboResponse struct {
	ID            int64   `json:"id"`
	Folio         string  `json:"folio"`
	Fecha         string  `json:"fecha"`
	ClienteNombre *string `json:"cliente_nombre"`
	Monto         float64 `json:"monto"`
	Concepto      *string `json:"concepto"`
	MetodoPago    string  `json:"metodo_pago"`
}

func ToReciboResponses(recibos []models.Recibo) []ReciboResponse {
	res := make([]ReciboResponse, len(recibos))
	for i, r := range recibos {
		res[i] = ReciboResponse{
			ID:            r.ID,
			Folio:         r.Folio,
			Fecha:         formatFecha(r.Fecha),
			ClienteNombre: r.ClienteNombre,
			Monto:         r.Monto.InexactFloat64(),
			Concepto:      r.Concepto,
			MetodoPago:    r.MetodoPago,
		}
	}
	return res
}
