package services

import (
	"context"
	"net/http"

	"github.com/dennysh/Sistema-Contable/internal/apperrors"
	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/dto"
	"github.com/dennysh/Sistema-Contable/internal/models"
)

const metodoPagoDefault = "Efectivo"

// ReciboService posts client receipts. The receipt and the bank balance
// increment commit in the same transaction.
type ReciboService struct {
	reciboRepo portsrepo.ReciboRepository
	cuentaRepo portsrepo.CuentaBancariaRepository
}

func NewReciboService(reciboRepo portsrepo.ReciboRepository, cuentaRepo portsrepo.CuentaBancariaRepository) *ReciboService {
	return &ReciboService{reciboRepo: reciboRepo, cuentaRepo: cuentaRepo}
}

func (s *ReciboService) Crear(ctx context.Context, req dto.CreateReciboRequest) (*models.Recibo, error) {
	fecha, err := dto.ParseFecha(req.Fecha)
	if err != nil {
		return nil, apperrors.NewValidationError("fecha inválida, se espera el formato YYYY-MM-DD")
	}

	metodoPago := req.MetodoPago
	if metodoPago == "" {
		metodoPago = metodoPagoDefault
	}

	tx, err := s.reciboRepo.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	defer func() { _ = s.reciboRepo.Rollback(ctx, tx) }()

	folio, err := GenerateFolio(ctx, tx, s.reciboRepo, "RC")
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to generate folio", err)
	}

	recibo := models.Recibo{
		Folio:            folio,
		Fecha:            fecha,
		ClienteID:        req.ClienteID,
		FacturaVentaID:   req.FacturaVentaID,
		CuentaBancariaID: req.CuentaBancariaID,
		Monto:            req.Monto,
		Concepto:         req.Concepto,
		MetodoPago:       metodoPago,
	}
	reciboID, err := s.reciboRepo.InsertRecibo(ctx, tx, recibo)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to insert recibo", err)
	}
	recibo.ID = reciboID

	if err := s.cuentaRepo.AplicarMovimientoSaldo(ctx, tx, req.CuentaBancariaID, req.Monto); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to update saldo bancario", err)
	}

	if err := s.reciboRepo.Commit(ctx, tx); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to commit recibo", err)
	}
	return &recibo, nil
}

func (s *ReciboService) Listar(ctx context.Context) ([]models.Recibo, error) {
	recibos, err := s.reciboRepo.ListRecibos(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list recibos", err)
	}
	return recibos, nil
}

// PagoService posts supplier payments, debiting the bank account balance in
// the same transaction.
type PagoService struct {
	pagoRepo   portsrepo.PagoRepository
	cuentaRepo portsrepo.CuentaBancariaRepository
}

func NewPagoService(pagoRepo portsrepo.PagoRepository, cuentaRepo portsrepo.CuentaBancariaRepository) *PagoService {
	return &PagoService{pagoRepo: pagoRepo, cuentaRepo: cuentaRepo}
}

func (s *PagoService) Crear(ctx context.Context, req dto.CreatePagoRequest) (*models.Pago, error) {
	fecha, err := dto.ParseFecha(req.Fecha)
	if err != nil {
		return nil, apperrors.NewValidationError("fecha inválida, se espera el formato YYYY-MM-DD")
	}

	metodoPago := req.MetodoPago
	if metodoPago == "" {
		metodoPago = metodoPagoDefault
	}

	tx, err := s.pagoRepo.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	defer func() { _ = s.pagoRepo.Rollback(ctx, tx) }()

	folio, err := GenerateFolio(ctx, tx, s.pagoRepo, "PG")
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to generate folio", err)
	}

	pago := models.Pago{
		Folio:            folio,
		Fecha:            fecha,
		ProveedorID:      req.ProveedorID,
		FacturaCompraID:  req.FacturaCompraID,
		CuentaBancariaID: req.CuentaBancariaID,
		Monto:            req.Monto,
		Concepto:         req.Concepto,
		MetodoPago:       metodoPago,
	}
	pagoID, err := s.pagoRepo.InsertPago(ctx, tx, pago)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to insert pago", err)
	}
	pago.ID = pagoID

	if err := s.cuentaRepo.AplicarMovimientoSaldo(ctx, tx, req.CuentaBancariaID, req.Monto.Neg()); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to update saldo bancario", err)
	}

	if err := s.pagoRepo.Commit(ctx, tx); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to commit pago", err)
	}
	return &pago, nil
}

func (s *PagoService) Listar(ctx context.Context) ([]models.Pago, error) {
	pagos, err := s.pagoRepo.ListPagos(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list pagos", err)
	}
	return pagos, nil
}
