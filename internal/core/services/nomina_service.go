package services

import (
	"context"
	"net/http"

	"github.com/dennysh/Sistema-Contable/internal/apperrors"
	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/dto"
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/shopspring/decimal"
)

var ocho = decimal.NewFromInt(8)

// CalcularTotalesNomina derives gross and net pay:
// bruto = salario_base + horas_extra * (salario_base / 8) + bonos,
// neto = bruto - deducciones.
func CalcularTotalesNomina(salarioBase, horasExtra, bonos, deducciones decimal.Decimal) (bruto, neto decimal.Decimal) {
	bruto = salarioBase.Add(horasExtra.Mul(salarioBase.Div(ocho))).Add(bonos)
	neto = bruto.Sub(deducciones)
	return bruto, neto
}

// NominaService creates payroll receipts. Payroll is standalone: no journal
// entry and no bank movement are derived from it.
type NominaService struct {
	nominaRepo portsrepo.ReciboNominaRepository
}

func NewNominaService(nominaRepo portsrepo.ReciboNominaRepository) *NominaService {
	return &NominaService{nominaRepo: nominaRepo}
}

func (s *NominaService) Crear(ctx context.Context, req dto.CreateReciboNominaRequest) (*models.ReciboNomina, error) {
	fecha, err := dto.ParseFecha(req.Fecha)
	if err != nil {
		return nil, apperrors.NewValidationError("fecha inválida, se espera el formato YYYY-MM-DD")
	}
	periodoInicio, err := dto.ParseFecha(req.PeriodoInicio)
	if err != nil {
		return nil, apperrors.NewValidationError("periodo_inicio inválido, se espera el formato YYYY-MM-DD")
	}
	periodoFin, err := dto.ParseFecha(req.PeriodoFin)
	if err != nil {
		return nil, apperrors.NewValidationError("periodo_fin inválido, se espera el formato YYYY-MM-DD")
	}

	bruto, neto := CalcularTotalesNomina(req.SalarioBase, req.HorasExtra, req.Bonos, req.Deducciones)

	tx, err := s.nominaRepo.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to begin transaction", err)
	}
	defer func() { _ = s.nominaRepo.Rollback(ctx, tx) }()

	folio, err := GenerateFolio(ctx, tx, s.nominaRepo, "RN")
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to generate folio", err)
	}

	recibo := models.ReciboNomina{
		Folio:         folio,
		Fecha:         fecha,
		EmpleadoID:    req.EmpleadoID,
		PeriodoInicio: periodoInicio,
		PeriodoFin:    periodoFin,
		SalarioBase:   req.SalarioBase,
		HorasExtra:    req.HorasExtra,
		Bonos:         req.Bonos,
		Deducciones:   req.Deducciones,
		TotalBruto:    bruto,
		TotalNeto:     neto,
	}
	reciboID, err := s.nominaRepo.InsertRecibo(ctx, tx, recibo)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to insert recibo de nómina", err)
	}
	recibo.ID = reciboID

	if err := s.nominaRepo.Commit(ctx, tx); err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to commit recibo de nómina", err)
	}
	return &recibo, nil
}

func (s *NominaService) Listar(ctx context.Context) ([]models.ReciboNomina, error) {
	recibos, err := s.nominaRepo.ListRecibos(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to list recibos de nómina", err)
	}
	return recibos, nil
}
