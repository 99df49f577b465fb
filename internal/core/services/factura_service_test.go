package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/core/services"
	"github.com/dennysh/Sistema-Contable/internal/dto"
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock FacturaVentaRepository ---
type MockFacturaVentaRepository struct {
	mock.Mock
}

var _ portsrepo.FacturaVentaRepository = (*MockFacturaVentaRepository)(nil)

func (m *MockFacturaVentaRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockFacturaVentaRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockFacturaVentaRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockFacturaVentaRepository) CountFoliosByPrefix(ctx context.Context, tx pgx.Tx, prefix string) (int64, error) {
	args := m.Called(ctx, tx, prefix)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFacturaVentaRepository) InsertFactura(ctx context.Context, tx pgx.Tx, f models.FacturaVenta) (int64, error) {
	args := m.Called(ctx, tx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFacturaVentaRepository) InsertDetalles(ctx context.Context, tx pgx.Tx, facturaID int64, detalles []models.DetalleFactura) error {
	args := m.Called(ctx, tx, facturaID, detalles)
	return args.Error(0)
}

func (m *MockFacturaVentaRepository) SetAsientoID(ctx context.Context, tx pgx.Tx, facturaID, asientoID int64) error {
	args := m.Called(ctx, tx, facturaID, asientoID)
	return args.Error(0)
}

func (m *MockFacturaVentaRepository) ListFacturas(ctx context.Context) ([]models.FacturaVenta, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FacturaVenta), args.Error(1)
}

// --- Mock FacturaCompraRepository ---
type MockFacturaCompraRepository struct {
	mock.Mock
}

var _ portsrepo.FacturaCompraRepository = (*MockFacturaCompraRepository)(nil)

func (m *MockFacturaCompraRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockFacturaCompraRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockFacturaCompraRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockFacturaCompraRepository) CountFoliosByPrefix(ctx context.Context, tx pgx.Tx, prefix string) (int64, error) {
	args := m.Called(ctx, tx, prefix)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFacturaCompraRepository) InsertFactura(ctx context.Context, tx pgx.Tx, f models.FacturaCompra) (int64, error) {
	args := m.Called(ctx, tx, f)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFacturaCompraRepository) InsertDetalles(ctx context.Context, tx pgx.Tx, facturaID int64, detalles []models.DetalleFactura) error {
	args := m.Called(ctx, tx, facturaID, detalles)
	return args.Error(0)
}

func (m *MockFacturaCompraRepository) SetAsientoID(ctx context.Context, tx pgx.Tx, facturaID, asientoID int64) error {
	args := m.Called(ctx, tx, facturaID, asientoID)
	return args.Error(0)
}

func (m *MockFacturaCompraRepository) ListFacturas(ctx context.Context) ([]models.FacturaCompra, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FacturaCompra), args.Error(1)
}

// --- Test Suite ---
type FacturaVentaServiceTestSuite struct {
	suite.Suite
	mockFacturaRepo *MockFacturaVentaRepository
	mockAsientoRepo *MockAsientoRepository
	service         *services.FacturaVentaService
}

func (suite *FacturaVentaServiceTestSuite) SetupTest() {
	suite.mockFacturaRepo = new(MockFacturaVentaRepository)
	suite.mockAsientoRepo = new(MockAsientoRepository)
	asientoSvc := services.NewAsientoService(suite.mockAsientoRepo)
	suite.service = services.NewFacturaVentaService(suite.mockFacturaRepo, asientoSvc)
}

func (suite *FacturaVentaServiceTestSuite) ventaRequest() dto.CreateFacturaVentaRequest {
	return dto.CreateFacturaVentaRequest{
		Fecha:     "2024-01-15",
		ClienteID: 9,
		Detalles: []dto.DetalleFacturaRequest{
			{ArticuloID: 1, Cantidad: 3, PrecioUnitario: decimal.NewFromInt(100)},
		},
	}
}

func (suite *FacturaVentaServiceTestSuite) TestCrear_Success() {
	ctx := context.Background()
	req := suite.ventaRequest()

	suite.mockFacturaRepo.On("Begin", ctx).Return(fakeTx{}, nil).Once()
	suite.mockFacturaRepo.On("CountFoliosByPrefix", ctx, mock.Anything, mock.Anything).Return(int64(0), nil).Once()
	suite.mockFacturaRepo.On("InsertFactura", ctx, mock.Anything, mock.MatchedBy(func(f models.FacturaVenta) bool {
		return f.ClienteID == 9 &&
			f.Estado == models.FacturaPendiente &&
			f.Subtotal.Equal(decimal.NewFromInt(300)) &&
			f.IVA.Equal(decimal.NewFromInt(45)) &&
			f.Total.Equal(decimal.NewFromInt(345))
	})).Return(int64(4), nil).Once()
	suite.mockFacturaRepo.On("InsertDetalles", ctx, mock.Anything, int64(4), mock.MatchedBy(func(detalles []models.DetalleFactura) bool {
		return len(detalles) == 1 &&
			detalles[0].FacturaID == 4 &&
			detalles[0].Subtotal.Equal(decimal.NewFromInt(300))
	})).Return(nil).Once()
	suite.mockFacturaRepo.On("SetAsientoID", ctx, mock.Anything, int64(4), int64(21)).Return(nil).Once()
	suite.mockFacturaRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockFacturaRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	suite.mockAsientoRepo.On("CountFoliosByPrefix", ctx, mock.Anything, mock.Anything).Return(int64(0), nil).Once()
	suite.mockAsientoRepo.On("InsertAsiento", ctx, mock.Anything, mock.Anything).Return(int64(21), nil).Once()
	suite.mockAsientoRepo.On("InsertMovimientos", ctx, mock.Anything, int64(21), mock.Anything).Return(nil).Once()

	factura, asientoID, err := suite.service.Crear(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(factura)
	suite.Equal(int64(4), factura.ID)
	expectedFolio := fmt.Sprintf("FV%s001", time.Now().Format("20060102"))
	suite.Equal(expectedFolio, factura.Folio)
	suite.Require().NotNil(asientoID)
	suite.Equal(int64(21), *asientoID)

	suite.mockFacturaRepo.AssertExpectations(suite.T())
	suite.mockAsientoRepo.AssertExpectations(suite.T())
}

func (suite *FacturaVentaServiceTestSuite) TestCrear_AsientoFalla() {
	ctx := context.Background()
	req := suite.ventaRequest()

	suite.mockFacturaRepo.On("Begin", ctx).Return(fakeTx{}, nil).Once()
	suite.mockFacturaRepo.On("CountFoliosByPrefix", ctx, mock.Anything, mock.Anything).Return(int64(0), nil).Once()
	suite.mockFacturaRepo.On("InsertFactura", ctx, mock.Anything, mock.Anything).Return(int64(4), nil).Once()
	suite.mockFacturaRepo.On("InsertDetalles", ctx, mock.Anything, int64(4), mock.Anything).Return(nil).Once()
	suite.mockFacturaRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockFacturaRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	// The derived entry fails inside the savepoint; the invoice must survive.
	suite.mockAsientoRepo.On("CountFoliosByPrefix", ctx, mock.Anything, mock.Anything).Return(int64(0), assert.AnError).Once()

	factura, asientoID, err := suite.service.Crear(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(factura)
	suite.Nil(asientoID)
	suite.mockFacturaRepo.AssertNotCalled(suite.T(), "SetAsientoID", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockFacturaRepo.AssertExpectations(suite.T())
}

func (suite *FacturaVentaServiceTestSuite) TestCrear_FechaInvalida() {
	ctx := context.Background()
	req := suite.ventaRequest()
	req.Fecha = "no-es-fecha"

	_, _, err := suite.service.Crear(ctx, req)

	suite.Require().Error(err)
	suite.mockFacturaRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func (suite *FacturaVentaServiceTestSuite) TestCrear_InsertFacturaError() {
	ctx := context.Background()
	req := suite.ventaRequest()

	suite.mockFacturaRepo.On("Begin", ctx).Return(fakeTx{}, nil).Once()
	suite.mockFacturaRepo.On("CountFoliosByPrefix", ctx, mock.Anything, mock.Anything).Return(int64(0), nil).Once()
	suite.mockFacturaRepo.On("InsertFactura", ctx, mock.Anything, mock.Anything).Return(int64(0), assert.AnError).Once()
	suite.mockFacturaRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	_, _, err := suite.service.Crear(ctx, req)

	suite.Require().Error(err)
	suite.mockFacturaRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func TestFacturaVentaService(t *testing.T) {
	suite.Run(t, new(FacturaVentaServiceTestSuite))
}

// --- FacturaCompraService ---
type FacturaCompraServiceTestSuite struct {
	suite.Suite
	mockFacturaRepo *MockFacturaCompraRepository
	mockAsientoRepo *MockAsientoRepository
	service         *services.FacturaCompraService
}

func (suite *FacturaCompraServiceTestSuite) SetupTest() {
	suite.mockFacturaRepo = new(MockFacturaCompraRepository)
	suite.mockAsientoRepo = new(MockAsientoRepository)
	asientoSvc := services.NewAsientoService(suite.mockAsientoRepo)
	suite.service = services.NewFacturaCompraService(suite.mockFacturaRepo, asientoSvc)
}

func (suite *FacturaCompraServiceTestSuite) TestCrear_Success() {
	ctx := context.Background()
	req := dto.CreateFacturaCompraRequest{
		Fecha:       "2024-02-20",
		ProveedorID: 3,
		Detalles: []dto.DetalleFacturaRequest{
			{ArticuloID: 2, Cantidad: 10, PrecioUnitario: decimal.NewFromInt(100)},
		},
	}

	suite.mockFacturaRepo.On("Begin", ctx).Return(fakeTx{}, nil).Once()
	suite.mockFacturaRepo.On("CountFoliosByPrefix", ctx, mock.Anything, mock.Anything).Return(int64(2), nil).Once()
	suite.mockFacturaRepo.On("InsertFactura", ctx, mock.Anything, mock.MatchedBy(func(f models.FacturaCompra) bool {
		return f.ProveedorID == 3 &&
			f.Subtotal.Equal(decimal.NewFromInt(1000)) &&
			f.IVA.Equal(decimal.NewFromInt(150)) &&
			f.Total.Equal(decimal.NewFromInt(1150))
	})).Return(int64(7), nil).Once()
	suite.mockFacturaRepo.On("InsertDetalles", ctx, mock.Anything, int64(7), mock.Anything).Return(nil).Once()
	suite.mockFacturaRepo.On("SetAsientoID", ctx, mock.Anything, int64(7), int64(33)).Return(nil).Once()
	suite.mockFacturaRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockFacturaRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	suite.mockAsientoRepo.On("CountFoliosByPrefix", ctx, mock.Anything, mock.Anything).Return(int64(0), nil).Once()
	suite.mockAsientoRepo.On("InsertAsiento", ctx, mock.Anything, mock.MatchedBy(func(a models.AsientoContable) bool {
		return a.Estado == models.AsientoAplicado
	})).Return(int64(33), nil).Once()
	suite.mockAsientoRepo.On("InsertMovimientos", ctx, mock.Anything, int64(33), mock.Anything).Return(nil).Once()

	factura, asientoID, err := suite.service.Crear(ctx, req)

	suite.Require().NoError(err)
	expectedFolio := fmt.Sprintf("FC%s003", time.Now().Format("20060102"))
	suite.Equal(expectedFolio, factura.Folio)
	suite.Require().NotNil(asientoID)
	suite.Equal(int64(33), *asientoID)

	suite.mockFacturaRepo.AssertExpectations(suite.T())
	suite.mockAsientoRepo.AssertExpectations(suite.T())
}

func TestFacturaCompraService(t *testing.T) {
	suite.Run(t, new(FacturaCompraServiceTestSuite))
}

func TestCalcularTotalesFactura(t *testing.T) {
	detalles := []dto.DetalleFacturaRequest{
		{ArticuloID: 1, Cantidad: 3, PrecioUnitario: decimal.NewFromInt(100)},
		{ArticuloID: 2, Cantidad: 2, PrecioUnitario: decimal.NewFromFloat(50.50)},
	}

	subtotal, iva, total := services.CalcularTotalesFactura(detalles)

	assert.True(t, subtotal.Equal(decimal.NewFromInt(401)), "subtotal: %s", subtotal)
	assert.True(t, iva.Equal(decimal.NewFromFloat(60.15)), "iva: %s", iva)
	assert.True(t, total.Equal(decimal.NewFromFloat(461.15)), "total: %s", total)
}

func TestCalcularTotalesFactura_SinDetalles(t *testing.T) {
	subtotal, iva, total := services.CalcularTotalesFactura(nil)

	assert.True(t, subtotal.IsZero())
	assert.True(t, iva.IsZero())
	assert.True(t, total.IsZero())
}
