package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/budgetplanner/budget_planner_app/internal/apperrors"
	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	portssvc "github.com/budgetplanner/budget_planner_app/internal/core/ports/services"
	"github.com/budgetplanner/budget_planner_app/internal/core/services"
	"github.com/budgetplanner/budget_planner_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (uint64, error) {
	args := m.Called(ctx, account)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, id uint64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) DeleteAccount(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo *MockAccountRepository
	service  portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.service = services.NewAccountServiceImpl(suite.mockRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:     "Test Savings",
		Balance:  decimal.RequireFromString("100.50"),
		Currency: "ZAR",
		Color:    "#0ea5e9",
		Icon:     domain.IconBank,
	}

	// Expect SaveAccount to be called once and assign id 7
	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(uint64(7), nil).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(createdAccount)
	suite.Equal(uint64(7), createdAccount.ID)
	suite.Equal(req.Name, createdAccount.Name)
	suite.Equal(req.Currency, createdAccount.Currency)
	suite.Equal(req.Icon, createdAccount.Icon)
	suite.True(createdAccount.Balance.Equal(req.Balance))
	suite.WithinDuration(time.Now(), createdAccount.CreatedAt, time.Second)
	suite.WithinDuration(time.Now(), createdAccount.UpdatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_SaveError() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		Name:     "Test Error",
		Currency: "ZAR",
		Color:    "#10b981",
		Icon:     domain.IconCash,
	}

	expectedErr := assert.AnError

	suite.mockRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(uint64(0), expectedErr).Once()

	createdAccount, err := suite.service.CreateAccount(ctx, req)

	suite.Require().Error(err)
	suite.Nil(createdAccount)
	suite.ErrorIs(err, expectedErr)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_Success() {
	ctx := context.Background()
	expectedAccount := &domain.Account{
		ID:       3,
		Name:     "Found Account",
		Currency: "ZAR",
		Icon:     domain.IconTrending,
	}

	suite.mockRepo.On("FindAccountByID", ctx, uint64(3)).Return(expectedAccount, nil).Once()

	account, err := suite.service.GetAccountByID(ctx, 3)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.Equal(expectedAccount, account)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestGetAccountByID_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindAccountByID", ctx, uint64(99)).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetAccountByID(ctx, 99)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_Empty() {
	ctx := context.Background()
	var expectedAccounts []domain.Account // nil from the repo

	suite.mockRepo.On("ListAccounts", ctx).Return(expectedAccounts, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx)

	suite.Require().NoError(err)
	suite.Empty(accounts)
	suite.NotNil(accounts) // Should be an empty slice, not nil

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestListAccounts_Success() {
	ctx := context.Background()
	expectedAccounts := []domain.Account{
		{ID: 1, Name: "Cash"},
		{ID: 2, Name: "RandBank"},
	}

	suite.mockRepo.On("ListAccounts", ctx).Return(expectedAccounts, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx)

	suite.Require().NoError(err)
	suite.Equal(expectedAccounts, accounts)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_PartialMerge() {
	ctx := context.Background()
	existing := &domain.Account{
		ID:       4,
		Name:     "Old Name",
		Balance:  decimal.RequireFromString("250.00"),
		Currency: "ZAR",
		Color:    "#0ea5e9",
		Icon:     domain.IconCash,
	}
	newName := "New Name"
	locked := true
	req := dto.UpdateAccountRequest{Name: &newName, Locked: &locked}

	suite.mockRepo.On("FindAccountByID", ctx, uint64(4)).Return(existing, nil).Once()
	suite.mockRepo.On("UpdateAccount", ctx, mock.MatchedBy(func(acc domain.Account) bool {
		// Untouched fields must carry over from the stored record
		return acc.Name == newName && acc.Locked && acc.Currency == "ZAR" && acc.Icon == domain.IconCash
	})).Return(nil).Once()

	updated, err := suite.service.UpdateAccount(ctx, 4, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(newName, updated.Name)
	suite.True(updated.Locked)
	suite.True(updated.Balance.Equal(decimal.RequireFromString("250.00")))
	suite.WithinDuration(time.Now(), updated.UpdatedAt, time.Second)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NoFields() {
	ctx := context.Background()
	existing := &domain.Account{ID: 4, Name: "Unchanged"}

	suite.mockRepo.On("FindAccountByID", ctx, uint64(4)).Return(existing, nil).Once()
	// UpdateAccount must not be called when no fields are provided

	updated, err := suite.service.UpdateAccount(ctx, 4, dto.UpdateAccountRequest{})

	suite.Require().NoError(err)
	suite.Equal(existing, updated)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestUpdateAccount_NotFound() {
	ctx := context.Background()
	newName := "Whatever"

	suite.mockRepo.On("FindAccountByID", ctx, uint64(42)).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateAccount(ctx, 42, dto.UpdateAccountRequest{Name: &newName})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestDeleteAccount_Success() {
	ctx := context.Background()

	suite.mockRepo.On("DeleteAccount", ctx, uint64(5)).Return(nil).Once()

	err := suite.service.DeleteAccount(ctx, 5)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
