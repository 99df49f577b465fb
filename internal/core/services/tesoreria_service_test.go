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

// --- Mock ReciboRepository ---
type MockReciboRepository struct {
	mock.Mock
}

var _ portsrepo.ReciboRepository = (*MockReciboRepository)(nil)

func (m *MockReciboRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockReciboRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockReciboRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockReciboRepository) CountFoliosByPrefix(ctx context.Context, tx pgx.Tx, prefix string) (int64, error) {
	args := m.Called(ctx, tx, prefix)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReciboRepository) InsertRecibo(ctx context.Context, tx pgx.Tx, r models.Recibo) (int64, error) {
	args := m.Called(ctx, tx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReciboRepository) ListRecibos(ctx context.Context) ([]models.Recibo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recibo), args.Error(1)
}

// --- Mock PagoRepository ---
type MockPagoRepository struct {
	mock.Mock
}

var _ portsrepo.PagoRepository = (*MockPagoRepository)(nil)

func (m *MockPagoRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockPagoRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPagoRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPagoRepository) CountFoliosByPrefix(ctx context.Context, tx pgx.Tx, prefix string) (int64, error) {
	args := m.Called(ctx, tx, prefix)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPagoRepository) InsertPago(ctx context.Context, tx pgx.Tx, p models.Pago) (int64, error) {
	args := m.Called(ctx, tx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPagoRepository) ListPagos(ctx context.Context) ([]models.Pago, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pago), args.Error(1)
}

// --- Mock CuentaBancariaRepository ---
type MockCuentaBancariaRepository struct {
	mock.Mock
}

var _ portsrepo.CuentaBancariaRepository = (*MockCuentaBancariaRepository)(nil)

func (m *MockCuentaBancariaRepository) SaveCuenta(ctx context.Context, c models.CuentaBancaria) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCuentaBancariaRepository) ListCuentas(ctx context.Context) ([]models.CuentaBancaria, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CuentaBancaria), args.Error(1)
}

func (m *MockCuentaBancariaRepository) AplicarMovimientoSaldo(ctx context.Context, tx pgx.Tx, cuentaID int64, delta decimal.Decimal) error {
	args := m.Called(ctx, tx, cuentaID, delta)
	return args.Error(0)
}

// --- ReciboService ---
type ReciboServiceTestSuite struct {
	suite.Suite
	mockReciboRepo *MockReciboRepository
	mockCuentaRepo *MockCuentaBancariaRepository
	service        *services.ReciboService
}

func (suite *ReciboServiceTestSuite) SetupTest() {
	suite.mockReciboRepo = new(MockReciboRepository)
	suite.mockCuentaRepo = new(MockCuentaBancariaRepository)
	suite.service = services.NewReciboService(suite.mockReciboRepo, suite.mockCuentaRepo)
}

func (suite *ReciboServiceTestSuite) TestCrear_Success() {
	ctx := context.Background()
	monto := decimal.NewFromInt(1500)
	req := dto.CreateReciboRequest{
		Fecha:            "2024-04-10",
		ClienteID:        5,
		CuentaBancariaID: 2,
		Monto:            monto,
	}

	suite.mockReciboRepo.On("Begin", ctx).Return(fakeTx{}, nil).Once()
	suite.mockReciboRepo.On("CountFoliosByPrefix", ctx, mock.Anything, mock.Anything).Return(int64(0), nil).Once()
	suite.mockReciboRepo.On("InsertRecibo", ctx, mock.Anything, mock.MatchedBy(func(r models.Recibo) bool {
		return r.ClienteID == 5 && r.MetodoPago == "Efectivo" && r.Monto.Equal(monto)
	})).Return(int64(8), nil).Once()
	// A receipt adds its amount to the bank balance.
	suite.mockCuentaRepo.On("AplicarMovimientoSaldo", ctx, mock.Anything, int64(2), mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(monto)
	})).Return(nil).Once()
	suite.mockReciboRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockReciboRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	recibo, err := suite.service.Crear(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(8), recibo.ID)
	expectedFolio := fmt.Sprintf("RC%s001", time.Now().Format("20060102"))
	suite.Equal(expectedFolio, recibo.Folio)
	suite.Equal("Efectivo", recibo.MetodoPago)

	suite.mockReciboRepo.AssertExpectations(suite.T())
	suite.mockCuentaRepo.AssertExpectations(suite.T())
}

func (suite *ReciboServiceTestSuite) TestCrear_SaldoFalla() {
	ctx := context.Background()
	req := dto.CreateReciboRequest{
		Fecha:            "2024-04-10",
		ClienteID:        5,
		CuentaBancariaID: 2,
		Monto:            decimal.NewFromInt(100),
	}

	suite.mockReciboRepo.On("Begin", ctx).Return(fakeTx{}, nil).Once()
	suite.mockReciboRepo.On("CountFoliosByPrefix", ctx, mock.Anything, mock.Anything).Return(int64(0), nil).Once()
	suite.mockReciboRepo.On("InsertRecibo", ctx, mock.Anything, mock.Anything).Return(int64(8), nil).Once()
	suite.mockCuentaRepo.On("AplicarMovimientoSaldo", ctx, mock.Anything, int64(2), mock.Anything).Return(assert.AnError).Once()
	suite.mockReciboRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	_, err := suite.service.Crear(ctx, req)

	suite.Require().Error(err)
	suite.mockReciboRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
}

func TestReciboService(t *testing.T) {
	suite.Run(t, new(ReciboServiceTestSuite))
}

// --- PagoService ---
type PagoServiceTestSuite struct {
	suite.Suite
	mockPagoRepo   *MockPagoRepository
	mockCuentaRepo *MockCuentaBancariaRepository
	service        *services.PagoService
}

func (suite *PagoServiceTestSuite) SetupTest() {
	suite.mockPagoRepo = new(MockPagoRepository)
	suite.mockCuentaRepo = new(MockCuentaBancariaRepository)
	suite.service = services.NewPagoService(suite.mockPagoRepo, suite.mockCuentaRepo)
}

func (suite *PagoServiceTestSuite) TestCrear_Success() {
	ctx := context.Background()
	monto := decimal.NewFromInt(2300)
	req := dto.CreatePagoRequest{
		Fecha:            "2024-04-12",
		ProveedorID:      6,
		CuentaBancariaID: 3,
		Monto:            monto,
		MetodoPago:       "Transferencia",
	}

	suite.mockPagoRepo.On("Begin", ctx).Return(fakeTx{}, nil).Once()
	suite.mockPagoRepo.On("CountFoliosByPrefix", ctx, mock.Anything, mock.Anything).Return(int64(1), nil).Once()
	suite.mockPagoRepo.On("InsertPago", ctx, mock.Anything, mock.MatchedBy(func(p models.Pago) bool {
		return p.ProveedorID == 6 && p.MetodoPago == "Transferencia"
	})).Return(int64(15), nil).Once()
	// A payment subtracts its amount from the bank balance.
	suite.mockCuentaRepo.On("AplicarMovimientoSaldo", ctx, mock.Anything, int64(3), mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(monto.Neg())
	})).Return(nil).Once()
	suite.mockPagoRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockPagoRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	pago, err := suite.service.Crear(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(15), pago.ID)
	expectedFolio := fmt.Sprintf("PG%s002", time.Now().Format("20060102"))
	suite.Equal(expectedFolio, pago.Folio)

	suite.mockPagoRepo.AssertExpectations(suite.T())
	suite.mockCuentaRepo.AssertExpectations(suite.T())
}

func (suite *PagoServiceTestSuite) TestCrear_FechaInvalida() {
	ctx := context.Background()
	req := dto.CreatePagoRequest{
		Fecha:            "2024/04/12",
		ProveedorID:      6,
		CuentaBancariaID: 3,
		Monto:            decimal.NewFromInt(100),
	}

	_, err := suite.service.Crear(ctx, req)

	suite.Require().Error(err)
	suite.mockPagoRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func TestPagoService(t *testing.T) {
	suite.Run(t, new(PagoServiceTestSuite))
}
