package services_test

import (
	"context"
	"testing"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	portssvc "github.com/budgetplanner/budget_planner_app/internal/core/ports/services"
	"github.com/budgetplanner/budget_planner_app/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockMaintenanceRepository is a mock type for the MaintenanceRepository interface
type MockMaintenanceRepository struct {
	mock.Mock
}

func (m *MockMaintenanceRepository) ClearAllData(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Test Suite Setup ---

type MaintenanceServiceTestSuite struct {
	suite.Suite
	mockMaintenanceRepo *MockMaintenanceRepository
	mockAccountRepo     *MockAccountRepository
	mockCategoryRepo    *MockCategoryRepository
	service             portssvc.MaintenanceSvcFacade
}

func (suite *MaintenanceServiceTestSuite) SetupTest() {
	suite.mockMaintenanceRepo = new(MockMaintenanceRepository)
	suite.mockAccountRepo = new(MockAccountRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewMaintenanceServiceImpl(suite.mockMaintenanceRepo, suite.mockAccountRepo, suite.mockCategoryRepo)
}

// --- Test Cases ---

func (suite *MaintenanceServiceTestSuite) TestClearAllData_Success() {
	ctx := context.Background()

	suite.mockMaintenanceRepo.On("ClearAllData", ctx).Return(nil).Once()

	err := suite.service.ClearAllData(ctx)

	suite.Require().NoError(err)
	suite.mockMaintenanceRepo.AssertExpectations(suite.T())
}

func (suite *MaintenanceServiceTestSuite) TestClearAllData_Error() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockMaintenanceRepo.On("ClearAllData", ctx).Return(expectedErr).Once()

	err := suite.service.ClearAllData(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockMaintenanceRepo.AssertExpectations(suite.T())
}

func (suite *MaintenanceServiceTestSuite) TestSeedInitialData_EmptyStore() {
	ctx := context.Background()

	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{}, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(uint64(1), nil).Times(3)
	suite.mockCategoryRepo.On("SaveCategory", ctx, mock.AnythingOfType("domain.Category")).Return(uint64(1), nil).Times(3)

	err := suite.service.SeedInitialData(ctx)

	suite.Require().NoError(err)
	suite.mockAccountRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *MaintenanceServiceTestSuite) TestSeedInitialData_AlreadySeeded() {
	ctx := context.Background()
	existing := []domain.Account{{ID: 1, Name: "Cash"}}

	suite.mockAccountRepo.On("ListAccounts", ctx).Return(existing, nil).Once()

	err := suite.service.SeedInitialData(ctx)

	suite.Require().NoError(err)
	// Any existing account at all skips seeding, even a partial earlier run
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *MaintenanceServiceTestSuite) TestSeedInitialData_SaveError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockAccountRepo.On("ListAccounts", ctx).Return([]domain.Account{}, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(uint64(0), expectedErr).Once()

	err := suite.service.SeedInitialData(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.mockCategoryRepo.AssertNotCalled(suite.T(), "SaveCategory", mock.Anything, mock.Anything)

	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func TestMaintenanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceServiceTestSuite))
}
