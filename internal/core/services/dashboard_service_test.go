package services_test

import (
	"context"
	"testing"

	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/core/services"
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportingRepository ---
type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) SumFacturasVentaPorEstado(ctx context.Context, estado models.FacturaEstado) (decimal.Decimal, error) {
	args := m.Called(ctx, estado)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumFacturasCompraPorEstado(ctx context.Context, estado models.FacturaEstado) (decimal.Decimal, error) {
	args := m.Called(ctx, estado)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumSaldosBancarios(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumValorInventario(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) SumActivosFijosActivos(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingRepository) CountAll(ctx context.Context) (models.Counts, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Counts), args.Error(1)
}

type DashboardServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReportingRepository
	service  *services.DashboardService
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReportingRepository)
	suite.service = services.NewDashboardService(suite.mockRepo)
}

func (suite *DashboardServiceTestSuite) TestSummary() {
	ctx := context.Background()

	suite.mockRepo.On("SumFacturasVentaPorEstado", ctx, models.FacturaPendiente).Return(decimal.NewFromInt(1000), nil).Once()
	suite.mockRepo.On("SumSaldosBancarios", ctx).Return(decimal.NewFromInt(2000), nil).Once()
	suite.mockRepo.On("SumValorInventario", ctx).Return(decimal.NewFromInt(500), nil).Once()
	suite.mockRepo.On("SumActivosFijosActivos", ctx).Return(decimal.NewFromInt(1500), nil).Once()
	suite.mockRepo.On("SumFacturasCompraPorEstado", ctx, models.FacturaPendiente).Return(decimal.NewFromInt(800), nil).Once()
	suite.mockRepo.On("SumFacturasVentaPorEstado", ctx, models.FacturaPagada).Return(decimal.NewFromInt(3000), nil).Once()

	summary, err := suite.service.Summary(ctx)

	suite.Require().NoError(err)
	suite.Require().NotNil(summary)

	suite.Equal(5000.0, summary.Activos.Total)
	suite.Equal(1000.0, summary.Activos.Detalle["cuentas_por_cobrar"])
	suite.Equal(2000.0, summary.Activos.Detalle["efectivo"])

	// Liabilities carry an estimated 15% VAT on pending purchases.
	suite.Equal(800.0, summary.Pasivos.Detalle["cuentas_por_pagar"])
	suite.Equal(120.0, summary.Pasivos.Detalle["impuestos_pagar"])
	suite.Equal(920.0, summary.Pasivos.Total)

	suite.Equal(3000.0, summary.Ingresos.Detalle["ventas"])
	suite.Equal(565.0, summary.Ingresos.Detalle["intereses"])
	suite.Equal(3565.0, summary.Ingresos.Total)

	suite.Equal(23513.0, summary.Gastos.Total)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestSummary_ErrorPropagado() {
	ctx := context.Background()

	suite.mockRepo.On("SumFacturasVentaPorEstado", ctx, models.FacturaPendiente).
		Return(decimal.Zero, assert.AnError).Once()

	_, err := suite.service.Summary(ctx)

	suite.Require().Error(err)
}

func (suite *DashboardServiceTestSuite) TestCounts() {
	ctx := context.Background()
	counts := models.Counts{Clientes: 3, FacturasVenta: 7, AsientosContables: 12}
	suite.mockRepo.On("CountAll", ctx).Return(counts, nil).Once()

	result, err := suite.service.Counts(ctx)

	suite.Require().NoError(err)
	suite.Equal(counts, result)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
