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

// Placeholder figures for income and expense lines that have no backing
// module yet. They are returned verbatim so the dashboard renders complete.
var (
	interesesPlaceholder          = decimal.NewFromInt(565)
	gastosContabilidadPlaceholder = decimal.NewFromInt(5656)
	publicidadPlaceholder         = decimal.NewFromInt(8945)
	equipoComputoPlaceholder      = decimal.NewFromInt(3254)
	reparacionesPlaceholder       = decimal.NewFromInt(5658)
)

// DashboardService aggregates the financial summary and the sidebar counts.
type DashboardService struct {
	reportingRepo portsrepo.ReportingRepository
}

func NewDashboardService(reportingRepo portsrepo.ReportingRepository) *DashboardService {
	return &DashboardService{reportingRepo: reportingRepo}
}

// Summary computes assets, liabilities, income and expenses. Liabilities
// include an estimated 15% VAT on pending purchase invoices; paid sales
// invoices count as income at their full total.
func (s *DashboardService) Summary(ctx context.Context) (*dto.DashboardSummaryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	cuentasPorCobrar, err := s.reportingRepo.SumFacturasVentaPorEstado(ctx, models.FacturaPendiente)
	if err != nil {
		logger.Error("Failed to sum pending sales invoices", slog.String("error", err.Error()))
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to build dashboard summary", err)
	}
	efectivo, err := s.reportingRepo.SumSaldosBancarios(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to build dashboard summary", err)
	}
	inventario, err := s.reportingRepo.SumValorInventario(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to build dashboard summary", err)
	}
	activosFijos, err := s.reportingRepo.SumActivosFijosActivos(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to build dashboard summary", err)
	}
	totalActivos := cuentasPorCobrar.Add(efectivo).Add(inventario).Add(activosFijos)

	cuentasPorPagar, err := s.reportingRepo.SumFacturasCompraPorEstado(ctx, models.FacturaPendiente)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to build dashboard summary", err)
	}
	impuestosPagar := cuentasPorPagar.Mul(tasaIVA)
	totalPasivos := cuentasPorPagar.Add(impuestosPagar)

	ventas, err := s.reportingRepo.SumFacturasVentaPorEstado(ctx, models.FacturaPagada)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusInternalServerError, "failed to build dashboard summary", err)
	}
	totalIngresos := ventas.Add(interesesPlaceholder)

	totalGastos := gastosContabilidadPlaceholder.
		Add(publicidadPlaceholder).
		Add(equipoComputoPlaceholder).
		Add(reparacionesPlaceholder)

	return &dto.DashboardSummaryResponse{
		Activos: dto.DashboardActivos{
			Total: totalActivos.InexactFloat64(),
			Detalle: map[string]float64{
				"cuentas_por_cobrar": cuentasPorCobrar.InexactFloat64(),
				"efectivo":           efectivo.InexactFloat64(),
				"inventario":         inventario.InexactFloat64(),
				"activos_fijos":      activosFijos.InexactFloat64(),
			},
		},
		Pasivos: dto.DashboardPasivos{
			Total: totalPasivos.InexactFloat64(),
			Detalle: map[string]float64{
				"cuentas_por_pagar": cuentasPorPagar.InexactFloat64(),
				"impuestos_pagar":   impuestosPagar.InexactFloat64(),
			},
		},
		Ingresos: dto.DashboardIngresos{
			Total: totalIngresos.InexactFloat64(),
			Detalle: map[string]float64{
				"ventas":    ventas.InexactFloat64(),
				"intereses": interesesPlaceholder.InexactFloat64(),
			},
		},
		Gastos: dto.DashboardGastos{
			Total: totalGastos.InexactFloat64(),
			Detalle: map[string]float64{
				"gastos_contabilidad": gastosContabilidadPlaceholder.InexactFloat64(),
				"publicidad":          publicidadPlaceholder.InexactFloat64(),
				"equipo_computo":      equipoComputoPlaceholder.InexactFloat64(),
				"reparaciones":        reparacionesPlaceholder.InexactFloat64(),
			},
		},
	}, nil
}

// Counts returns per-entity row counts for the sidebar badges.
func (s *DashboardService) Counts(ctx context.Context) (models.Counts, error) {
	counts, err := s.reportingRepo.CountAll(ctx)
	if err != nil {
		return models.Counts{}, apperrors.NewAppError(http.StatusInternalServerError, "failed to count entities", err)
	}
	return counts, nil
}
