package dto

import (
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/shopspring/decimal"
)

type CreateArticuloRequest struct {
	Codigo       string           `json:"codigo" binding:"required"`
	Nombre       string           `json:"nombre" binding:"required"`
	Descripcion  *string          `json:"descripcion"`
	PrecioCompra *decimal.Decimal `json:"precio_compra"`
	PrecioVenta  *decimal.Decimal `json:"precio_venta"`
	StockActual  int              `json:"stock_actual" binding:"gte=0"`
	StockMinimo  int              `json:"stock_minimo" binding:"gte=0"`
	UnidadMedida string           `json:"unidad_medida"`
}

type ArticuloResponse struct {
	ID           int64    `json:"id"`
	Codigo       string   `json:"codigo"`
	Nombre       string   `json:"nombre"`
	Descripcion  *string  `json:"descripcion"`
	PrecioCompra *float64 `json:"precio_compra"`
	PrecioVenta  *float64 `json:"precio_venta"`
	StockActual  int      `json:"stock_actual"`
	StockMinimo  int      `json:"stock_minimo"`
	UnidadMedida string   `json:"unidad_medida"`
}

func decimalPtrToFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

func ToArticuloResponses(articulos []models.ArticuloInventario) []ArticuloResponse {
	res := make([]ArticuloResponse, len(articulos))
	for i, a := range articulos {
		res[i] = ArticuloResponse{
			ID:           a.ID,
			Codigo:       a.Codigo,
			Nombre:       a.Nombre,
			Descripcion:  a.Descripcion,
			PrecioCompra: decimalPtrToFloat(a.PrecioCompra),
			PrecioVenta:  decimalPtrToFloat(a.PrecioVenta),
			StockActual:  a.StockActual,
			StockMinimo:  a.StockMinimo,
			UnidadMedida: a.UnidadMedida,
		}
	}
	return res
}
