package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/budgetplanner/budget_planner_app/internal/apperrors"
	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	portsrepo "github.com/budgetplanner/budget_planner_app/internal/core/ports/repositories"
	portssvc "github.com/budgetplanner/budget_planner_app/internal/core/ports/services"
	"github.com/budgetplanner/budget_planner_app/internal/dto"
)

// accountServiceImpl implements the AccountSvcFacade interface
type accountServiceImpl struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountServiceImpl creates a new account service
func NewAccountServiceImpl(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountServiceImpl{
		accountRepo: repo,
	}
}

// Ensure accountServiceImpl implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountServiceImpl)(nil)

func (s *accountServiceImpl) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	now := time.Now()

	account := domain.Account{
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
		Balance:       req.Balance,
		Currency:      req.Currency,
		Color:         req.Color,
		Icon:          req.Icon,
		Locked:        req.Locked,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	id, err := s.accountRepo.SaveAccount(ctx, account)
	if err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("name", account.Name))
		return nil, err
	}
	account.ID = id

	s.LogInfo(ctx, "Account created successfully",
		slog.Uint64("account_id", account.ID),
		slog.String("name", account.Name))
	return &account, nil
}

func (s *accountServiceImpl) GetAccountByID(ctx context.Context, id uint64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID",
				slog.Uint64("account_id", id))
		}
		return nil, err // Propagate error (including NotFound)
	}

	s.LogDebug(ctx, "Account retrieved successfully",
		slog.Uint64("account_id", account.ID))
	return account, nil
}

func (s *accountServiceImpl) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}

	if accounts == nil {
		return []domain.Account{}, nil // Return empty slice if repo returns nil
	}

	s.LogDebug(ctx, "Accounts listed successfully",
		slog.Int("count", len(accounts)))
	return accounts, nil
}

func (s *accountServiceImpl) UpdateAccount(ctx context.Context, id uint64, req dto.UpdateAccountRequest) (*domain.Account, error) {
	// Fetch the existing account
	account, err := s.GetAccountByID(ctx, id)
	if err != nil {
		return nil, err // GetAccountByID already logs errors
	}

	// Apply updates
	updated := false
	if req.Name != nil {
		account.Name = *req.Name
		updated = true
	}
	if req.AccountNumber != nil {
		account.AccountNumber = *req.AccountNumber
		updated = true
	}
	if req.Balance != nil {
		account.Balance = *req.Balance
		updated = true
	}
	if req.Currency != nil {
		account.Currency = *req.Currency
		updated = true
	}
	if req.Color != nil {
		account.Color = *req.Color
		updated = true
	}
	if req.Icon != nil {
		account.Icon = *req.Icon
		updated = true
	}
	if req.Locked != nil {
		account.Locked = *req.Locked
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for account update",
			slog.Uint64("account_id", id))
		return account, nil
	}

	account.UpdatedAt = time.Now()

	err = s.accountRepo.UpdateAccount(ctx, *account)
	if err != nil {
		s.LogError(ctx, err, "Failed to update account",
			slog.Uint64("account_id", id))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated successfully",
		slog.Uint64("account_id", account.ID))
	return account, nil
}

func (s *accountServiceImpl) DeleteAccount(ctx context.Context, id uint64) error {
	// Transactions that reference the account are deliberately left in
	// place; record views fall back to an empty account name for them.
	err := s.accountRepo.DeleteAccount(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete account",
			slog.Uint64("account_id", id))
		return err
	}

	s.LogInfo(ctx, "Account deleted successfully",
		slog.Uint64("account_id", id))
	return nil
}
