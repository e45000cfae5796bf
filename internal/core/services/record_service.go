package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/budgetplanner/budget_planner_app/internal/apperrors"
	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	portsrepo "github.com/budgetplanner/budget_planner_app/internal/core/ports/repositories"
	portssvc "github.com/budgetplanner/budget_planner_app/internal/core/ports/services"
	"github.com/budgetplanner/budget_planner_app/internal/dto"
	"github.com/budgetplanner/budget_planner_app/internal/utils/daterange"
)

// defaultDescription is stored when the form supplied neither a note nor a
// category for a new record.
const defaultDescription = "Transaction"

// recordServiceImpl implements the RecordSvcFacade interface
type recordServiceImpl struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewRecordServiceImpl creates a new record service
func NewRecordServiceImpl(txnRepo portsrepo.TransactionRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.RecordSvcFacade {
	return &recordServiceImpl{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
	}
}

// Ensure recordServiceImpl implements the RecordSvcFacade interface
var _ portssvc.RecordSvcFacade = (*recordServiceImpl)(nil)

func (s *recordServiceImpl) CreateRecord(ctx context.Context, req dto.CreateRecordRequest) (*domain.Transaction, error) {
	// Verify the owning account up front so a bad id fails before any write.
	account, err := s.accountRepo.FindAccountByID(ctx, req.AccountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find account for new record",
			slog.Uint64("account_id", req.AccountID))
		return nil, fmt.Errorf("invalid account: %w", err)
	}

	now := time.Now()
	date := req.Date
	if date.IsZero() {
		date = now
	}

	description := req.Description
	if description == "" {
		description = req.Category
	}
	if description == "" {
		description = defaultDescription
	}

	txn := domain.Transaction{
		AccountID:   req.AccountID,
		Description: description,
		Amount:      req.SignedAmount(),
		Date:        date,
		Category:    req.Category,
		HasReceipt:  req.HasReceipt,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	id, err := s.txnRepo.SaveTransaction(ctx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to save record",
			slog.Uint64("account_id", req.AccountID))
		return nil, err
	}
	txn.ID = id

	// The balance adjustment is a second, independent write. If it fails
	// the record stays behind with the account balance unchanged.
	account.Balance = account.Balance.Add(txn.Amount)
	account.UpdatedAt = now
	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to adjust account balance for new record",
			slog.Uint64("record_id", txn.ID),
			slog.Uint64("account_id", account.ID))
		return nil, fmt.Errorf("record saved but balance adjustment failed: %w", err)
	}

	s.LogInfo(ctx, "Record created successfully",
		slog.Uint64("record_id", txn.ID),
		slog.Uint64("account_id", txn.AccountID),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

func (s *recordServiceImpl) GetRecordByID(ctx context.Context, id uint64) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find record by ID",
				slog.Uint64("record_id", id))
		}
		return nil, err
	}
	return txn, nil
}

func (s *recordServiceImpl) ListRecords(ctx context.Context, params dto.ListRecordsParams, now time.Time) ([]domain.Transaction, map[uint64]string, daterange.Range, error) {
	dateRange, err := s.resolveRange(params, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve date range",
			slog.String("range", params.Range))
		return nil, nil, daterange.Range{}, err
	}

	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records")
		return nil, nil, daterange.Range{}, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts for record filtering")
		return nil, nil, daterange.Range{}, err
	}
	accountNames := make(map[uint64]string, len(accounts))
	for _, acc := range accounts {
		accountNames[acc.ID] = acc.Name
	}

	filtered := newRecordFilter(params, dateRange, accountNames).apply(txns)

	s.LogDebug(ctx, "Records listed successfully",
		slog.Int("total", len(txns)),
		slog.Int("matched", len(filtered)),
		slog.String("range", dateRange.Label))
	return filtered, accountNames, dateRange, nil
}

// resolveRange turns the list params into a concrete date interval. An
// explicit start or end overrides any named preset; with neither present
// the listing is unbounded.
func (s *recordServiceImpl) resolveRange(params dto.ListRecordsParams, now time.Time) (daterange.Range, error) {
	if !params.Start.IsZero() || !params.End.IsZero() {
		r := daterange.Range{Label: "Custom"}
		if !params.Start.IsZero() {
			start := params.Start
			r.Start = &start
		}
		if !params.End.IsZero() {
			end := params.End
			r.End = &end
		}
		return r, nil
	}
	if params.Range == "" {
		return daterange.AllTime(), nil
	}
	return daterange.ParsePreset(params.Range, now)
}

func (s *recordServiceImpl) ListRecordsByAccount(ctx context.Context, accountID uint64) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records by account",
			slog.Uint64("account_id", accountID))
		return nil, err
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

func (s *recordServiceImpl) ListRecordsByDateRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactionsByDateRange(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to list records by date range",
			slog.Time("start", start),
			slog.Time("end", end))
		return nil, err
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

func (s *recordServiceImpl) UpdateRecord(ctx context.Context, id uint64, req dto.UpdateRecordRequest) (*domain.Transaction, error) {
	txn, err := s.GetRecordByID(ctx, id)
	if err != nil {
		return nil, err // GetRecordByID already logs errors
	}

	// Amount and account edits do not re-reconcile any account balance;
	// only creation carries the paired adjustment.
	updated := false
	if req.AccountID != nil {
		txn.AccountID = *req.AccountID
		updated = true
	}
	if req.Description != nil {
		txn.Description = *req.Description
		updated = true
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
		updated = true
	}
	if req.Date != nil {
		txn.Date = *req.Date
		updated = true
	}
	if req.Category != nil {
		txn.Category = *req.Category
		updated = true
	}
	if req.HasReceipt != nil {
		txn.HasReceipt = *req.HasReceipt
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for record update",
			slog.Uint64("record_id", id))
		return txn, nil
	}

	txn.UpdatedAt = time.Now()

	err = s.txnRepo.UpdateTransaction(ctx, *txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to update record",
			slog.Uint64("record_id", id))
		return nil, err
	}

	s.LogInfo(ctx, "Record updated successfully",
		slog.Uint64("record_id", txn.ID))
	return txn, nil
}

func (s *recordServiceImpl) DeleteRecord(ctx context.Context, id uint64) error {
	// The balance adjustment made at creation time is not reverted.
	err := s.txnRepo.DeleteTransaction(ctx, id)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete record",
			slog.Uint64("record_id", id))
		return err
	}

	s.LogInfo(ctx, "Record deleted successfully",
		slog.Uint64("record_id", id))
	return nil
}
