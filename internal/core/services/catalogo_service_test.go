package services_test

import (
	"context"
	"testing"

	portsrepo "github.com/dennysh/Sistema-Contable/internal/core/ports/repositories"
	"github.com/dennysh/Sistema-Contable/internal/core/services"
	"github.com/dennysh/Sistema-Contable/internal/dto"
	"github.com/dennysh/Sistema-Contable/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ArticuloRepository ---
type MockArticuloRepository struct {
	mock.Mock
}

var _ portsrepo.ArticuloRepository = (*MockArticuloRepository)(nil)

func (m *MockArticuloRepository) SaveArticulo(ctx context.Context, a models.ArticuloInventario) (int64, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockArticuloRepository) ListArticulos(ctx context.Context) ([]models.ArticuloInventario, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ArticuloInventario), args.Error(1)
}

// --- Mock EmpleadoRepository ---
type MockEmpleadoRepository struct {
	mock.Mock
}

var _ portsrepo.EmpleadoRepository = (*MockEmpleadoRepository)(nil)

func (m *MockEmpleadoRepository) SaveEmpleado(ctx context.Context, e models.Empleado) (int64, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEmpleadoRepository) ListEmpleados(ctx context.Context) ([]models.Empleado, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Empleado), args.Error(1)
}

// --- Mock ActivoFijoRepository ---
type MockActivoFijoRepository struct {
	mock.Mock
}

var _ portsrepo.ActivoFijoRepository = (*MockActivoFijoRepository)(nil)

func (m *MockActivoFijoRepository) SaveActivo(ctx context.Context, a models.ActivoFijo) (int64, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockActivoFijoRepository) ListActivos(ctx context.Context) ([]models.ActivoFijo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ActivoFijo), args.Error(1)
}

// --- Test Suite ---
type CatalogoServiceTestSuite struct {
	suite.Suite
}

func (suite *CatalogoServiceTestSuite) TestArticuloCrear_UnidadPorDefecto() {
	ctx := context.Background()
	mockRepo := new(MockArticuloRepository)
	service := services.NewArticuloService(mockRepo)

	mockRepo.On("SaveArticulo", ctx, mock.MatchedBy(func(a models.ArticuloInventario) bool {
		return a.UnidadMedida == "PZA" && a.Codigo == "ART-001"
	})).Return(int64(1), nil).Once()

	id, err := service.Crear(ctx, dto.CreateArticuloRequest{
		Codigo: "ART-001",
		Nombre: "Tornillo",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(1), id)
	mockRepo.AssertExpectations(suite.T())
}

func (suite *CatalogoServiceTestSuite) TestArticuloCrear_UnidadExplicita() {
	ctx := context.Background()
	mockRepo := new(MockArticuloRepository)
	service := services.NewArticuloService(mockRepo)

	mockRepo.On("SaveArticulo", ctx, mock.MatchedBy(func(a models.ArticuloInventario) bool {
		return a.UnidadMedida == "KG"
	})).Return(int64(2), nil).Once()

	_, err := service.Crear(ctx, dto.CreateArticuloRequest{
		Codigo:       "ART-002",
		Nombre:       "Cemento",
		UnidadMedida: "KG",
	})

	suite.Require().NoError(err)
	mockRepo.AssertExpectations(suite.T())
}

func (suite *CatalogoServiceTestSuite) TestCuentaBancariaCrear_SaldoActualIgualInicial() {
	ctx := context.Background()
	mockRepo := new(MockCuentaBancariaRepository)
	service := services.NewCuentaBancariaService(mockRepo)

	saldo := decimal.NewFromInt(25000)
	mockRepo.On("SaveCuenta", ctx, mock.MatchedBy(func(c models.CuentaBancaria) bool {
		return c.SaldoInicial.Equal(saldo) && c.SaldoActual.Equal(saldo)
	})).Return(int64(3), nil).Once()

	id, err := service.Crear(ctx, dto.CreateCuentaBancariaRequest{
		Nombre:       "Cuenta operativa",
		Banco:        "BBVA",
		NumeroCuenta: "0123456789",
		SaldoInicial: saldo,
	})

	suite.Require().NoError(err)
	suite.Equal(int64(3), id)
	mockRepo.AssertExpectations(suite.T())
}

func (suite *CatalogoServiceTestSuite) TestEmpleadoCrear_ActivoPorDefecto() {
	ctx := context.Background()
	mockRepo := new(MockEmpleadoRepository)
	service := services.NewEmpleadoService(mockRepo)

	mockRepo.On("SaveEmpleado", ctx, mock.MatchedBy(func(e models.Empleado) bool {
		return e.Activo
	})).Return(int64(4), nil).Once()

	_, err := service.Crear(ctx, dto.CreateEmpleadoRequest{
		Nombre:          "Laura",
		ApellidoPaterno: "Mendoza",
	})

	suite.Require().NoError(err)
	mockRepo.AssertExpectations(suite.T())
}

func (suite *CatalogoServiceTestSuite) TestEmpleadoCrear_FechaNacimientoInvalida() {
	ctx := context.Background()
	mockRepo := new(MockEmpleadoRepository)
	service := services.NewEmpleadoService(mockRepo)

	nacimiento := "01/01/1990"
	_, err := service.Crear(ctx, dto.CreateEmpleadoRequest{
		Nombre:          "Laura",
		ApellidoPaterno: "Mendoza",
		FechaNacimiento: &nacimiento,
	})

	suite.Require().Error(err)
	mockRepo.AssertNotCalled(suite.T(), "SaveEmpleado", mock.Anything, mock.Anything)
}

func (suite *CatalogoServiceTestSuite) TestActivoFijoCrear_Defaults() {
	ctx := context.Background()
	mockRepo := new(MockActivoFijoRepository)
	service := services.NewActivoFijoService(mockRepo)

	mockRepo.On("SaveActivo", ctx, mock.MatchedBy(func(a models.ActivoFijo) bool {
		return a.VidaUtilAnos == 5 && a.Estado == models.ActivoActivo
	})).Return(int64(5), nil).Once()

	_, err := service.Crear(ctx, dto.CreateActivoFijoRequest{
		Codigo:           "AF-001",
		Nombre:           "Camioneta",
		ValorAdquisicion: decimal.NewFromInt(350000),
		FechaAdquisicion: "2023-08-01",
	})

	suite.Require().NoError(err)
	mockRepo.AssertExpectations(suite.T())
}

func (suite *CatalogoServiceTestSuite) TestActivoFijoCrear_VidaUtilExplicita() {
	ctx := context.Background()
	mockRepo := new(MockActivoFijoRepository)
	service := services.NewActivoFijoService(mockRepo)

	vida := 10
	mockRepo.On("SaveActivo", ctx, mock.MatchedBy(func(a models.ActivoFijo) bool {
		return a.VidaUtilAnos == 10
	})).Return(int64(6), nil).Once()

	_, err := service.Crear(ctx, dto.CreateActivoFijoRequest{
		Codigo:           "AF-002",
		Nombre:           "Edificio",
		ValorAdquisicion: decimal.NewFromInt(2000000),
		FechaAdquisicion: "2020-01-15",
		VidaUtilAnos:     &vida,
	})

	suite.Require().NoError(err)
	mockRepo.AssertExpectations(suite.T())
}

func TestCatalogoServices(t *testing.T) {
	suite.Run(t, new(CatalogoServiceTestSuite))
}
