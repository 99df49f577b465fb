package repositories

import (
	"context"

	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/jackc/pgx/v5"
)

type FacturaVentaRepository interface {
	TxManager
	FolioCounter
	InsertFactura(ctx context.Context, tx pgx.Tx, f models.FacturaVenta) (int64, error)
	InsertDetalles(ctx context.Context, tx pgx.Tx, facturaID int64, detalles []models.DetalleFactura) error
	// SetAsientoID links the invoice to its derived journal entry.
	SetAsientoID(ctx context.Context, tx pgx.Tx, facturaID, asientoID int64) error
	ListFacturas(ctx context.Context) ([]models.FacturaVenta, error)
}

type FacturaCompraRepository interface {
	TxManager
	FolioCounter
	InsertFactura(ctx context.Context, tx pgx.Tx, f models.FacturaCompra) (int64, error)
	InsertDetalles(ctx context.Context, tx pgx.Tx, facturaID int64, detalles []models.DetalleFactura) error
	SetAsientoID(ctx context.Context, tx pgx.Tx, facturaID, asientoID int64) error
	ListFacturas(ctx context.Context) ([]models.FacturaCompra, error)
}

type ReciboRepository interface {
	TxManager
	FolioCounter
	InsertRecibo(ctx context.Context, tx pgx.Tx, r models.Recibo) (int64, error)
	ListRecibos(ctx context.Context) ([]models.Recibo, error)
}

type PagoRepository interface {
	TxManager
	FolioCounter
	InsertPago(ctx context.Context, tx pgx.Tx, p models.Pago) (int64, error)
	ListPagos(ctx context.Context) ([]models.Pago, error)
}

type ReciboNominaRepository interface {
	TxManager
	FolioCounter
	InsertRecibo(ctx context.Context, tx pgx.Tx, r models.ReciboNomina) (int64, error)
	ListRecibos(ctx context.Context) ([]models.ReciboNomina, error)
}
