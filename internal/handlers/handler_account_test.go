package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/budgetplanner/budget_planner_app/internal/apperrors"
	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	portssvc "github.com/budgetplanner/budget_planner_app/internal/core/ports/services"
	"github.com/budgetplanner/budget_planner_app/internal/dto"
	"github.com/budgetplanner/budget_planner_app/internal/events"
	"github.com/budgetplanner/budget_planner_app/internal/handlers"
	"github.com/budgetplanner/budget_planner_app/internal/platform/config"
	"github.com/budgetplanner/budget_planner_app/internal/platform/readiness"
	"github.com/budgetplanner/budget_planner_app/internal/utils/daterange"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) GetAccountByID(ctx context.Context, id uint64) (*domain.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}
func (m *MockAccountService) UpdateAccount(ctx context.Context, id uint64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
func (m *MockAccountService) DeleteAccount(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock RecordService ---
type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) CreateRecord(ctx context.Context, req dto.CreateRecordRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockRecordService) GetRecordByID(ctx context.Context, id uint64) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockRecordService) ListRecords(ctx context.Context, params dto.ListRecordsParams, now time.Time) ([]domain.Transaction, map[uint64]string, daterange.Range, error) {
	args := m.Called(ctx, params, now)
	if args.Get(0) == nil {
		return nil, nil, daterange.Range{}, args.Error(3)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(map[uint64]string), args.Get(2).(daterange.Range), args.Error(3)
}
func (m *MockRecordService) ListRecordsByAccount(ctx context.Context, accountID uint64) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockRecordService) ListRecordsByDateRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockRecordService) UpdateRecord(ctx context.Context, id uint64, req dto.UpdateRecordRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockRecordService) DeleteRecord(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ portssvc.RecordSvcFacade = (*MockRecordService)(nil)

// --- Mock CategoryService ---
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

var _ portssvc.CategorySvcFacade = (*MockCategoryService)(nil)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) CreateBudget(ctx context.Context, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Budget), args.Error(1)
}
func (m *MockBudgetService) ListBudgets(ctx context.Context) ([]domain.Budget, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Budget), args.Error(1)
}

var _ portssvc.BudgetSvcFacade = (*MockBudgetService)(nil)

// --- Mock ReportingService ---
type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) GetDashboardSummary(ctx context.Context, now time.Time) (*dto.DashboardSummary, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DashboardSummary), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Mock MaintenanceService ---
type MockMaintenanceService struct {
	mock.Mock
}

func (m *MockMaintenanceService) ClearAllData(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockMaintenanceService) SeedInitialData(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ portssvc.MaintenanceSvcFacade = (*MockMaintenanceService)(nil)

// --- Test Suite Setup ---

type AccountHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	gate        *readiness.Gate
	mockAccount *MockAccountService
}

func (suite *AccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.mockAccount = new(MockAccountService)
	container := &portssvc.ServiceContainer{
		Account:     suite.mockAccount,
		Record:      new(MockRecordService),
		Category:    new(MockCategoryService),
		Budget:      new(MockBudgetService),
		Reporting:   new(MockReportingService),
		Maintenance: new(MockMaintenanceService),
	}

	cfg := &config.Config{
		Port:               "8080",
		IsProduction:       true, // no swagger wiring in tests
		CORSAllowedOrigins: "http://localhost:3000",
		AdminRateLimit:     "5-M",
	}

	rate, err := limiter.NewRateFromFormatted(cfg.AdminRateLimit)
	suite.Require().NoError(err)

	suite.gate = readiness.NewGate()
	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container, suite.gate, events.NewBus(), limiter.New(memory.NewStore(), rate))
}

func (suite *AccountHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AccountHandlerTestSuite) TestListAccounts_BeforeReady() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	w := suite.serve(req)

	// Data routes answer 503 until the store is initialized
	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.mockAccount.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestReadyEndpoint() {
	w := suite.serve(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	suite.Equal(http.StatusServiceUnavailable, w.Code)

	suite.gate.MarkReady()

	w = suite.serve(httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *AccountHandlerTestSuite) TestListAccounts_Success() {
	suite.gate.MarkReady()
	accounts := []domain.Account{
		{ID: 1, Name: "Cash", Balance: decimal.RequireFromString("528.00"), Currency: "ZAR", Icon: domain.IconCash},
	}
	suite.mockAccount.On("ListAccounts", mock.Anything).Return(accounts, nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil))

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.AccountResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 1)
	suite.Equal("Cash", resp[0].Name)
	suite.Equal("dollar-sign", resp[0].IconAsset)

	suite.mockAccount.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	suite.gate.MarkReady()
	suite.mockAccount.On("GetAccountByID", mock.Anything, uint64(42)).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.serve(httptest.NewRequest(http.MethodGet, "/api/v1/accounts/42", nil))

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockAccount.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	suite.gate.MarkReady()
	created := &domain.Account{ID: 1, Name: "Cash", Currency: "ZAR", Color: "#0ea5e9", Icon: domain.IconCash}
	suite.mockAccount.On("CreateAccount", mock.Anything, mock.AnythingOfType("dto.CreateAccountRequest")).Return(created, nil).Once()

	body, _ := json.Marshal(map[string]any{
		"name":     "Cash",
		"currency": "ZAR",
		"color":    "#0ea5e9",
		"icon":     "cash",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := suite.serve(req)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockAccount.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_AcceptsEveryFormIcon() {
	suite.gate.MarkReady()

	// One icon per account type on the add-account form, all persistable.
	for _, icon := range domain.AccountIcons {
		created := &domain.Account{ID: 1, Name: "Savings", Currency: "ZAR", Color: "#0ea5e9", Icon: icon}
		suite.mockAccount.On("CreateAccount", mock.Anything, mock.MatchedBy(func(req dto.CreateAccountRequest) bool {
			return req.Icon == icon
		})).Return(created, nil).Once()

		body, _ := json.Marshal(map[string]any{
			"name":     "Savings",
			"currency": "ZAR",
			"color":    "#0ea5e9",
			"icon":     string(icon),
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := suite.serve(req)

		suite.Equal(http.StatusCreated, w.Code, "icon %q", icon)
	}
	suite.mockAccount.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_ServiceError() {
	suite.gate.MarkReady()
	suite.mockAccount.On("CreateAccount", mock.Anything, mock.AnythingOfType("dto.CreateAccountRequest")).Return(nil, assert.AnError).Once()

	body, _ := json.Marshal(map[string]any{
		"name":     "Cash",
		"currency": "ZAR",
		"color":    "#0ea5e9",
		"icon":     "cash",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := suite.serve(req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockAccount.AssertExpectations(suite.T())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_RejectsUnknownIcon() {
	suite.gate.MarkReady()

	body, _ := json.Marshal(map[string]any{
		"name":     "Cash",
		"currency": "ZAR",
		"color":    "#0ea5e9",
		"icon":     "rocket",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockAccount.AssertNotCalled(suite.T(), "CreateAccount", mock.Anything, mock.Anything)
}

func (suite *AccountHandlerTestSuite) TestDeleteAccount_NoContent() {
	suite.gate.MarkReady()
	suite.mockAccount.On("DeleteAccount", mock.Anything, uint64(3)).Return(nil).Once()

	w := suite.serve(httptest.NewRequest(http.MethodDelete, "/api/v1/accounts/3", nil))

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockAccount.AssertExpectations(suite.T())
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
