package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ArticuloInventario is an inventory item usable as an invoice line article.
type ArticuloInventario struct {
	ID            int64            `json:"id"`
	Codigo        string           `json:"codigo"` // Unique
	Nombre        string           `json:"nombre"`
	Descripcion   *string          `json:"descripcion"`
	PrecioCompra  *decimal.Decimal `json:"precio_compra"`
	PrecioVenta   *decimal.Decimal `json:"precio_venta"`
	StockActual   int              `json:"stock_actual"`
	StockMinimo   int              `json:"stock_minimo"`
	UnidadMedida  string           `json:"unidad_medida"`
	FechaRegistro time.Time        `json:"fecha_registro"`
}
