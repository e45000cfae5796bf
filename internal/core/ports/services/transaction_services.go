package services

import (
	"context"
	"time"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	"github.com/budgetplanner/budget_planner_app/internal/dto"
	"github.com/budgetplanner/budget_planner_app/internal/utils/daterange"
)

// RecordSvcFacade defines the transaction-record operations exposed to
// handlers.
type RecordSvcFacade interface {
	// CreateRecord persists a new transaction and then adjusts the owning
	// account's balance by the same signed amount. The two writes are
	// independent; a failed balance adjustment leaves the record in place.
	CreateRecord(ctx context.Context, req dto.CreateRecordRequest) (*domain.Transaction, error)

	// GetRecordByID retrieves a single transaction.
	GetRecordByID(ctx context.Context, id uint64) (*domain.Transaction, error)

	// ListRecords loads the transaction list, applies the filter sidebar's
	// predicates and resolves the effective date range. Account names for
	// the response are returned alongside.
	ListRecords(ctx context.Context, params dto.ListRecordsParams, now time.Time) ([]domain.Transaction, map[uint64]string, daterange.Range, error)

	// ListRecordsByAccount retrieves the transactions owned by an account.
	ListRecordsByAccount(ctx context.Context, accountID uint64) ([]domain.Transaction, error)

	// ListRecordsByDateRange retrieves transactions dated within
	// [start, end], inclusive.
	ListRecordsByDateRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error)

	// UpdateRecord merges the provided fields over the existing record and
	// advances updatedAt. No account balance is re-reconciled.
	UpdateRecord(ctx context.Context, id uint64, req dto.UpdateRecordRequest) (*domain.Transaction, error)

	// DeleteRecord removes the transaction. Idempotent; the paired balance
	// adjustment from creation is not reverted.
	DeleteRecord(ctx context.Context, id uint64) error
}
