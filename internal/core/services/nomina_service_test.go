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

// --- Mock ReciboNominaRepository ---
type MockReciboNominaRepository struct {
	mock.Mock
}

var _ portsrepo.ReciboNominaRepository = (*MockReciboNominaRepository)(nil)

func (m *MockReciboNominaRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockReciboNominaRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockReciboNominaRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockReciboNominaRepository) CountFoliosByPrefix(ctx context.Context, tx pgx.Tx, prefix string) (int64, error) {
	args := m.Called(ctx, tx, prefix)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReciboNominaRepository) InsertRecibo(ctx context.Context, tx pgx.Tx, r models.ReciboNomina) (int64, error) {
	args := m.Called(ctx, tx, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReciboNominaRepository) ListRecibos(ctx context.Context) ([]models.ReciboNomina, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReciboNomina), args.Error(1)
}

func TestCalcularTotalesNomina(t *testing.T) {
	tests := []struct {
		name          string
		salarioBase   int64
		horasExtra    int64
		bonos         int64
		deducciones   int64
		esperadoBruto int64
		esperadoNeto  int64
	}{
		{"solo salario base", 800, 0, 0, 0, 800, 800},
		{"con horas extra y bonos", 800, 2, 100, 150, 1100, 950},
		{"deducciones mayores", 1000, 4, 0, 1600, 1500, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bruto, neto := services.CalcularTotalesNomina(
				decimal.NewFromInt(tt.salarioBase),
				decimal.NewFromInt(tt.horasExtra),
				decimal.NewFromInt(tt.bonos),
				decimal.NewFromInt(tt.deducciones),
			)
			assert.True(t, bruto.Equal(decimal.NewFromInt(tt.esperadoBruto)), "bruto: %s", bruto)
			assert.True(t, neto.Equal(decimal.NewFromInt(tt.esperadoNeto)), "neto: %s", neto)
		})
	}
}

type NominaServiceTestSuite struct {
	suite.Suite
	mockRepo *MockReciboNominaRepository
	service  *services.NominaService
}

func (suite *NominaServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockReciboNominaRepository)
	suite.service = services.NewNominaService(suite.mockRepo)
}

func (suite *NominaServiceTestSuite) TestCrear_Success() {
	ctx := context.Background()
	req := dto.CreateReciboNominaRequest{
		Fecha:         "2024-05-15",
		EmpleadoID:    4,
		PeriodoInicio: "2024-05-01",
		PeriodoFin:    "2024-05-15",
		SalarioBase:   decimal.NewFromInt(800),
		HorasExtra:    decimal.NewFromInt(2),
		Bonos:         decimal.NewFromInt(100),
		Deducciones:   decimal.NewFromInt(150),
	}

	suite.mockRepo.On("Begin", ctx).Return(fakeTx{}, nil).Once()
	suite.mockRepo.On("CountFoliosByPrefix", ctx, mock.Anything, mock.Anything).Return(int64(0), nil).Once()
	suite.mockRepo.On("InsertRecibo", ctx, mock.Anything, mock.MatchedBy(func(r models.ReciboNomina) bool {
		return r.EmpleadoID == 4 &&
			r.TotalBruto.Equal(decimal.NewFromInt(1100)) &&
			r.TotalNeto.Equal(decimal.NewFromInt(950))
	})).Return(int64(19), nil).Once()
	suite.mockRepo.On("Commit", ctx, mock.Anything).Return(nil).Once()
	suite.mockRepo.On("Rollback", ctx, mock.Anything).Return(nil)

	recibo, err := suite.service.Crear(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(19), recibo.ID)
	expectedFolio := fmt.Sprintf("RN%s001", time.Now().Format("20060102"))
	suite.Equal(expectedFolio, recibo.Folio)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NominaServiceTestSuite) TestCrear_PeriodoInicioInvalido() {
	ctx := context.Background()
	req := dto.CreateReciboNominaRequest{
		Fecha:         "2024-05-15",
		EmpleadoID:    4,
		PeriodoInicio: "mayo",
		PeriodoFin:    "2024-05-15",
		SalarioBase:   decimal.NewFromInt(800),
	}

	_, err := suite.service.Crear(ctx, req)

	suite.Require().Error(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func TestNominaService(t *testing.T) {
	suite.Run(t, new(NominaServiceTestSuite))
}
