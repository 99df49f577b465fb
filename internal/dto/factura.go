package dto

import (
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/shopspring/decimal"
)

type DetalleFacturaRequest struct {
	ArticuloID     int64           `json:"articulo_id" binding:"required"`
	Cantidad       int             `json:"cantidad" binding:"gte=0"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

type CreateFacturaVentaRequest struct {
	Fecha     string                  `json:"fecha" binding:"required"`
	ClienteID int64                   `json:"cliente_id" binding:"required"`
	Estado    string                  `json:"estado"`
	Detalles  []DetalleFacturaRequest `json:"detalles" binding:"required,dive"`
}

type CreateFacturaCompraRequest struct {
	Fecha       string                  `json:"fecha" binding:"required"`
	ProveedorID int64                   `json:"proveedor_id" binding:"required"`
	Estado      string                  `json:"estado"`
	Detalles    []DetalleFacturaRequest `json:"detalles" binding:"required,dive"`
}

// CreateFacturaResponse reports the created invoice. AsientoID is null when the
// derived journal entry could not be created; the invoice commits regardless.
type CreateFacturaResponse struct {
	ID        int64  `json:"id"`
	Folio     string `json:"folio"`
	Message   string `json:"message"`
	AsientoID *int64 `json:"asiento_id"`
}

type FacturaVentaResponse struct {
	ID            int64   `json:"id"`
	Folio         string  `json:"folio"`
	Fecha         string  `json:"fecha"`
	ClienteNombre *string `json:"cliente_nombre"`
	Subtotal      float64 `json:"subtotal"`
	IVA           float64 `json:"iva"`
	Total         float64 `json:"total"`
	Estado        string  `json:"estado"`
}

type FacturaCompraResponse struct {
	ID              int64   `json:"id"`
	Folio           string  `json:"folio"`
	Fecha           string  `json:"fecha"`
	ProveedorNombre *string `json:"proveedor_nombre"`
	Subtotal        float64 `json:"subtotal"`
	IVA             float64 `json:"iva"`
	Total           float64 `json:"total"`
	Estado          string  `json:"estado"`
}

func ToFacturaVentaResponses(facturas []models.FacturaVenta) []FacturaVentaResponse {
	res := make([]FacturaVentaResponse, len(facturas))
	for i, f := range facturas {
		res[i] = FacturaVentaResponse{
			ID:            f.ID,
			Folio:         f.Folio,
			Fecha:         formatFecha(f.Fecha),
			ClienteNombre: f.ClienteNombre,
			Subtotal:      f.Subtotal.InexactFloat64(),
			IVA:           f.IVA.InexactFloat64(),
			Total:         f.Total.InexactFloat64(),
			Estado:        string(f.Estado),
		}
	}
	return res
}

func ToFacturaCompraResponses(facturas []models.FacturaCompra) []FacturaCompraResponse {
	res := make([]FacturaCompraResponse, len(facturas))
	for i, f := range facturas {
		res[i] = FacturaCompraResponse{
			ID:              f.ID,
			Folio:           f.Folio,
			Fecha:           formatFecha(f.Fecha),
			ProveedorNombre: f.ProveedorNombre,
			Subtotal:        f.Subtotal.InexactFloat64(),
			IVA:             f.IVA.InexactFloat64(),
			Total:           f.Total.InexactFloat64(),
			Estado:          string(f.Estado),
		}
	}
	return res
}
