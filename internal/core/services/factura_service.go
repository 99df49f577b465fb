package services

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dennysh/Sistema-Contable/internal/apperrors"
	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/dto"
	"github.com/dennysh/Sistema-Contable/internal/middleware"
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/shopspring/decimal"
)

// tasaIVA is the VAT rate applied to every invoice.
var tasaIVA = decimal.NewFromFloat(0.15)

// CalcularTotalesFactura derives subtotal, IVA and total from invoice lines.
// Line subtotals are always cantidad * precio_unitario regardless of any
// client-sent value.
func CalcularTotalesFactura(detalles []dto.DetalleFacturaRequest) (subtotal, iva, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, d := range detalles {
		subtotal = subtotal.Add(d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad))))
	}
	iva = subtotal.Mul(tasaIVA)
	total = subtotal.Add(iva)
	return subtotal, iva, total
}

// FacturaVentaService creates and lists sales invoices. Creating an invoice
// also derives a journal entry; that derivation is best-effort and never
// aborts the invoice itself.
type FacturaVentaService struct {
	facturaRepo portsrepo.FacturaVentaRepository
	asientoSvc  *AsientoService
}

func NewFacturaVentaService(facturaRepo portsrepo.FacturaVentaRepository, asientoSvc *AsientoService) *FacturaVentaService {
	return &FacturaVentaService{facturaRepo: facturaRepo, asientoSvc: asientoSvc}
}

func (s *FacturaVentaService) Crear(ctx context.Context, req dto.CreateFacturaVentaRequest) (*models.FacturaVenta, *int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	fecha, err := dto.ParseFecha(req.Fecha)
	if err != nil {
		return nil, nil, apperrors.NewValidationError("fecha inválida, se espera el formato YYYY-MM-DD")
	}

	subtotal, iva, total := CalcularTotalesFactura(req.Detalles)

	estado := models.FacturaEstado(req.Estado)
	if estado == "" {
		estado = models.FacturaPendiente
	}

	tx, err := s.facturaRepo.Begin(ctx)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	defer func() { _ = s.facturaRepo.Rollback(ctx, tx) }()

	folio, err := GenerateFolio(ctx, tx, s.facturaRepo, "FV")
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to generate folio", err)
	}

	factura := models.FacturaVenta{
		Folio:     folio,
		Fecha:     fecha,
		ClienteID: req.ClienteID,
		Subtotal:  subtotal,
		IVA:       iva,
		Total:     total,
		Estado:    estado,
	}
	facturaID, err := s.facturaRepo.InsertFactura(ctx, tx, factura)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to insert factura", err)
	}
	factura.ID = facturaID

	detalles := make([]models.DetalleFactura, len(req.Detalles))
	for i, d := range req.Detalles {
		detalles[i] = models.DetalleFactura{
			FacturaID:      facturaID,
			ArticuloID:     d.ArticuloID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad))),
		}
	}
	if err := s.facturaRepo.InsertDetalles(ctx, tx, facturaID, detalles); err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to insert detalles", err)
	}

	// Derive the journal entry inside a savepoint so a failure there rolls
	// back only the entry, never the invoice.
	var asientoID *int64
	sp, err := tx.Begin(ctx)
	if err != nil {
		logger.Warn("Failed to open savepoint for derived asiento", slog.String("folio", folio), slog.String("error", err.Error()))
	} else {
		id, aerr := s.asientoSvc.CrearParaVenta(ctx, sp, factura)
		if aerr != nil {
			_ = sp.Rollback(ctx)
			logger.Warn("Failed to create derived asiento for factura de venta", slog.String("folio", folio), slog.String("error", aerr.Error()))
		} else if cerr := sp.Commit(ctx); cerr != nil {
			logger.Warn("Failed to commit derived asiento for factura de venta", slog.String("folio", folio), slog.String("error", cerr.Error()))
		} else {
			asientoID = &id
		}
	}
	if asientoID != nil {
		if err := s.facturaRepo.SetAsientoID(ctx, tx, facturaID, *asientoID); err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to link asiento to factura", err)
		}
	}

	if err := s.facturaRepo.Commit(ctx, tx); err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to commit factura", err)
	}
	return &factura, asientoID, nil
}

func (s *FacturaVentaService) Listar(ctx context.Context) ([]models.FacturaVenta, error) {
	facturas, err := s.facturaRepo.ListFacturas(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list facturas de venta", err)
	}
	return facturas, nil
}

// FacturaCompraService mirrors FacturaVentaService for purchase invoices.
type FacturaCompraService struct {
	facturaRepo portsrepo.FacturaCompraRepository
	asientoSvc  *AsientoService
}

func NewFacturaCompraService(facturaRepo portsrepo.FacturaCompraRepository, asientoSvc *AsientoService) *FacturaCompraService {
	return &FacturaCompraService{facturaRepo: facturaRepo, asientoSvc: asientoSvc}
}

func (s *FacturaCompraService) Crear(ctx context.Context, req dto.CreateFacturaCompraRequest) (*models.FacturaCompra, *int64, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	fecha, err := dto.ParseFecha(req.Fecha)
	if err != nil {
		return nil, nil, apperrors.NewValidationError("fecha inválida, se espera el formato YYYY-MM-DD")
	}

	subtotal, iva, total := CalcularTotalesFactura(req.Detalles)

	estado := models.FacturaEstado(req.Estado)
	if estado == "" {
		estado = models.FacturaPendiente
	}

	tx, err := s.facturaRepo.Begin(ctx)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	defer func() { _ = s.facturaRepo.Rollback(ctx, tx) }()

	folio, err := GenerateFolio(ctx, tx, s.facturaRepo, "FC")
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to generate folio", err)
	}

	factura := models.FacturaCompra{
		Folio:       folio,
		Fecha:       fecha,
		ProveedorID: req.ProveedorID,
		Subtotal:    subtotal,
		IVA:         iva,
		Total:       total,
		Estado:      estado,
	}
	facturaID, err := s.facturaRepo.InsertFactura(ctx, tx, factura)
	if err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to insert factura", err)
	}
	factura.ID = facturaID

	detalles := make([]models.DetalleFactura, len(req.Detalles))
	for i, d := range req.Detalles {
		detalles[i] = models.DetalleFactura{
			FacturaID:      facturaID,
			ArticuloID:     d.ArticuloID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Subtotal:       d.PrecioUnitario.Mul(decimal.NewFromInt(int64(d.Cantidad))),
		}
	}
	if err := s.facturaRepo.InsertDetalles(ctx, tx, facturaID, detalles); err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to insert detalles", err)
	}

	var asientoID *int64
	sp, err := tx.Begin(ctx)
	if err != nil {
		logger.Warn("Failed to open savepoint for derived asiento", slog.String("folio", folio), slog.String("error", err.Error()))
	} else {
		id, aerr := s.asientoSvc.CrearParaCompra(ctx, sp, factura)
		if aerr != nil {
			_ = sp.Rollback(ctx)
			logger.Warn("Failed to create derived asiento for factura de compra", slog.String("folio", folio), slog.String("error", aerr.Error()))
		} else if cerr := sp.Commit(ctx); cerr != nil {
			logger.Warn("Failed to commit derived asiento for factura de compra", slog.String("folio", folio), slog.String("error", cerr.Error()))
		} else {
			asientoID = &id
		}
	}
	if asientoID != nil {
		if err := s.facturaRepo.SetAsientoID(ctx, tx, facturaID, *asientoID); err != nil {
			return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to link asiento to factura", err)
		}
	}

	if err := s.facturaRepo.Commit(ctx, tx); err != nil {
		return nil, nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to commit factura", err)
	}
	return &factura, asientoID, nil
}

func (s *FacturaCompraService) Listar(ctx context.Context) ([]models.FacturaCompra, error) {
	facturas, err := s.facturaRepo.ListFacturas(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list facturas de compra", err)
	}
	return facturas, nil
}
