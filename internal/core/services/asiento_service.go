package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dennysh/Sistema-Contable/internal/apperrors"
	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/dto"
	"github.com/dennysh/Sistema-Contable/internal/middleware"
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var nombresMeses = []string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// NombreMes returns the Spanish name for a month in 1..12.
func NombreMes(mes int) string {
	if mes < 1 || mes > 12 {
		return ""
	}
	return nombresMeses[mes-1]
}

// AsientoService owns journal entries: manual entries posted through the API
// and the entries derived automatically from invoices.
type AsientoService struct {
	asientoRepo portsrepo.AsientoRepository
}

func NewAsientoService(asientoRepo portsrepo.AsientoRepository) *AsientoService {
	return &AsientoService{asientoRepo: asientoRepo}
}

// CrearManual validates and persists a manual journal entry with its movements.
// Unbalanced entries are rejected before anything touches the database.
func (s *AsientoService) CrearManual(ctx context.Context, req dto.CreateAsientoRequest) (*models.AsientoContable, error) {
	fecha, err := dto.ParseFecha(req.Fecha)
	if err != nil {
		return nil, apperrors.NewValidationError("fecha inválida, se espera el formato YYYY-MM-DD")
	}

	totalDebe := decimal.Zero
	totalHaber := decimal.Zero
	for _, mov := range req.Movimientos {
		totalDebe = totalDebe.Add(mov.Debe)
		totalHaber = totalHaber.Add(mov.Haber)
	}
	if !totalDebe.Equal(totalHaber) {
		return nil, apperrors.NewValidationError("El total del debe debe ser igual al total del haber")
	}

	estado := models.AsientoEstado(req.Estado)
	if estado == "" {
		estado = models.AsientoBorrador
	}

	tx, err := s.asientoRepo.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	defer func() { _ = s.asientoRepo.Rollback(ctx, tx) }()

	folio, err := GenerateFolio(ctx, tx, s.asientoRepo, "AC")
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to generate folio", err)
	}

	asiento := models.AsientoContable{
		Folio:      folio,
		Fecha:      fecha,
		Mes:        int(fecha.Month()),
		Anio:       fecha.Year(),
		Concepto:   req.Concepto,
		TotalDebe:  totalDebe,
		TotalHaber: totalHaber,
		Estado:     estado,
	}

	asientoID, err := s.asientoRepo.InsertAsiento(ctx, tx, asiento)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to insert asiento", err)
	}

	movimientos := make([]models.MovimientoContable, len(req.Movimientos))
	for i, mov := range req.Movimientos {
		movimientos[i] = models.MovimientoContable{
			AsientoID: asientoID,
			Cuenta:    mov.Cuenta,
			Debe:      mov.Debe,
			Haber:     mov.Haber,
			Concepto:  mov.Concepto,
		}
	}
	if err := s.asientoRepo.InsertMovimientos(ctx, tx, asientoID, movimientos); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to insert movimientos", err)
	}

	if err := s.asientoRepo.Commit(ctx, tx); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to commit asiento", err)
	}

	asiento.ID = asientoID
	asiento.Movimientos = movimientos
	return &asiento, nil
}

// CrearParaVenta records the derived entry for a sales invoice inside the
// caller's transaction: receivable for the total against sales revenue and
// output VAT. The entry posts directly in Aplicado.
func (s *AsientoService) CrearParaVenta(ctx context.Context, tx pgx.Tx, f models.FacturaVenta) (int64, error) {
	cobroConcepto := fmt.Sprintf("Cobro pendiente - Cliente ID: %d", f.ClienteID)
	ventaConcepto := "Venta de productos"
	ivaConcepto := "IVA de venta"

	movimientos := []models.MovimientoContable{
		{Cuenta: models.CuentaPorCobrar, Debe: f.Total, Haber: decimal.Zero, Concepto: &cobroConcepto},
		{Cuenta: models.CuentaVentas, Debe: decimal.Zero, Haber: f.Subtotal, Concepto: &ventaConcepto},
		{Cuenta: models.CuentaIVAPorPagar, Debe: decimal.Zero, Haber: f.IVA, Concepto: &ivaConcepto},
	}

	concepto := fmt.Sprintf("Venta de productos - Factura %s", f.Folio)
	return s.crearDerivado(ctx, tx, f.Fecha, concepto, f.Total, movimientos)
}

// CrearParaCompra records the derived entry for a purchase invoice inside the
// caller's transaction: purchases and input VAT against accounts payable.
func (s *AsientoService) CrearParaCompra(ctx context.Context, tx pgx.Tx, f models.FacturaCompra) (int64, error) {
	compraConcepto := "Compra de productos"
	ivaConcepto := "IVA de compra"
	pagoConcepto := fmt.Sprintf("Pago pendiente - Proveedor ID: %d", f.ProveedorID)

	movimientos := []models.MovimientoContable{
		{Cuenta: models.CuentaCompras, Debe: f.Subtotal, Haber: decimal.Zero, Concepto: &compraConcepto},
		{Cuenta: models.CuentaIVAAcreditable, Debe: f.IVA, Haber: decimal.Zero, Concepto: &ivaConcepto},
		{Cuenta: models.CuentaPorPagar, Debe: decimal.Zero, Haber: f.Total, Concepto: &pagoConcepto},
	}

	concepto := fmt.Sprintf("Compra de productos - Factura %s", f.Folio)
	return s.crearDerivado(ctx, tx, f.Fecha, concepto, f.Total, movimientos)
}

func (s *AsientoService) crearDerivado(ctx context.Context, tx pgx.Tx, fecha time.Time, concepto string, total decimal.Decimal, movimientos []models.MovimientoContable) (int64, error) {
	folio, err := GenerateFolio(ctx, tx, s.asientoRepo, "AC")
	if err != nil {
		return 0, err
	}

	asiento := models.AsientoContable{
		Folio:      folio,
		Fecha:      fecha,
		Mes:        int(fecha.Month()),
		Anio:       fecha.Year(),
		Concepto:   concepto,
		TotalDebe:  total,
		TotalHaber: total,
		Estado:     models.AsientoAplicado,
	}

	asientoID, err := s.asientoRepo.InsertAsiento(ctx, tx, asiento)
	if err != nil {
		return 0, fmt.Errorf("failed to insert derived asiento: %w", err)
	}
	for i := range movimientos {
		movimientos[i].AsientoID = asientoID
	}
	if err := s.asientoRepo.InsertMovimientos(ctx, tx, asientoID, movimientos); err != nil {
		return 0, fmt.Errorf("failed to insert derived movimientos: %w", err)
	}
	return asientoID, nil
}

// Listar returns journal entries, optionally filtered by month and/or year,
// with their movements attached. Newest entries come first.
func (s *AsientoService) Listar(ctx context.Context, mes, anio *int) ([]models.AsientoContable, error) {
	asientos, err := s.asientoRepo.ListAsientos(ctx, mes, anio)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list asientos", err)
	}
	if len(asientos) == 0 {
		return asientos, nil
	}

	ids := make([]int64, len(asientos))
	for i, a := range asientos {
		ids[i] = a.ID
	}
	movsByAsiento, err := s.asientoRepo.FindMovimientosByAsientoIDs(ctx, ids)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to load movimientos", err)
	}
	for i := range asientos {
		movs := movsByAsiento[asientos[i].ID]
		if movs == nil {
			movs = []models.MovimientoContable{}
		}
		asientos[i].Movimientos = movs
	}
	return asientos, nil
}

// ListarPeriodos returns the distinct (year, month) buckets that have entries,
// newest first, with the Spanish month name resolved.
func (s *AsientoService) ListarPeriodos(ctx context.Context) ([]dto.PeriodoResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	periodos, err := s.asientoRepo.ListPeriodos(ctx)
	if err != nil {
		logger.Error("Failed to list periodos", slog.String("error", err.Error()))
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list periodos", err)
	}

	res := make([]dto.PeriodoResponse, len(periodos))
	for i, p := range periodos {
		res[i] = dto.PeriodoResponse{
			Anio:      p.Anio,
			Mes:       p.Mes,
			Cantidad:  p.Cantidad,
			NombreMes: NombreMes(p.Mes),
		}
	}
	return res, nil
}
