package dto

import (
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/shopspring/decimal"
)

type CreatePagoRequest struct {
	Fecha            string          `json:"fecha" binding:"required"`
	ProveedorID      int64           `json:"proveedor_id" binding:"required"`
	FacturaCompraID  *int64          `json:"factura_compra_id"`
	CuentaBancariaID int64           `json:"cuenta_bancaria_id" binding:"required"`
	Monto            decimal.Decimal `json:"monto" binding:"required"`
	Concepto         *string         `json:"concepto"`
	MetodoPago       string          `json:"metodo_pago"`
}

type PagoResponse struct {
	ID              int64   `json:"id"`
	Folio           string  `json:"folio"`
	Fecha           string  `json:"fecha"`
	ProveedorNombre *string `json:"proveedor_nombre"`
	Monto           float64 `json:"monto"`
	Concepto        *string `json:"concepto"`
	MetodoPago      string  `json:"metodo_pago"`
}

func ToPagoResponses(pagos []models.Pago) []PagoResponse {
	res := make([]PagoResponse, len(pagos))
	for i, p := range pagos {
		res[i] = PagoResponse{
			ID:              p.ID,
			Folio:           p.Folio,
			Fecha:           formatFecha(p.Fecha),
			ProveedorNombre: p.ProveedorNombre,
			Monto:           p.Monto.InexactFloat64(),
			Concepto:        p.Concepto,
			MetodoPago:      p.MetodoPago,
		}
	}
	return res
}
