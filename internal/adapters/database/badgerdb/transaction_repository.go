package badgerdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	portsrepo "github.com/budgetplanner/budget_planner_app/internal/core/ports/repositories"
)

type transactionRepository struct {
	store *Store
}

// NewTransactionRepository creates a new repository for transaction data.
func NewTransactionRepository(store *Store) portsrepo.TransactionRepositoryFacade {
	return &transactionRepository{store: store}
}

var _ portsrepo.TransactionRepositoryFacade = (*transactionRepository)(nil)

// transactionIndexEntries returns the secondary-index postings for a
// transaction: by owning account, by date and by category.
func transactionIndexEntries(t domain.Transaction) []IndexEntry {
	return []IndexEntry{
		{Index: IndexAccountID, Value: EncodeID(t.AccountID)},
		{Index: IndexDate, Value: EncodeTime(t.Date)},
		{Index: IndexCategory, Value: []byte(t.Category)},
	}
}

func (r *transactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) (uint64, error) {
	return r.store.Insert(CollectionTransactions, func(id uint64) ([]byte, []IndexEntry, error) {
		txn.ID = id
		value, err := json.Marshal(txn)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode transaction: %w", err)
		}
		return value, transactionIndexEntries(txn), nil
	})
}

func (r *transactionRepository) FindTransactionByID(ctx context.Context, id uint64) (*domain.Transaction, error) {
	raw, err := r.store.Get(CollectionTransactions, id)
	if err != nil {
		return nil, err
	}
	var txn domain.Transaction
	if err := json.Unmarshal(raw, &txn); err != nil {
		return nil, fmt.Errorf("failed to decode transaction %d: %w", id, err)
	}
	return &txn, nil
}

func (r *transactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	raws, err := r.store.List(CollectionTransactions)
	if err != nil {
		return nil, err
	}
	return decodeTransactions(raws)
}

func (r *transactionRepository) ListTransactionsByAccount(ctx context.Context, accountID uint64) ([]domain.Transaction, error) {
	raws, err := r.store.ListByIndex(CollectionTransactions, IndexAccountID, EncodeID(accountID))
	if err != nil {
		return nil, err
	}
	return decodeTransactions(raws)
}

func (r *transactionRepository) ListTransactionsByDateRange(ctx context.Context, start, end time.Time) ([]domain.Transaction, error) {
	raws, err := r.store.ListByIndexRange(CollectionTransactions, IndexDate, EncodeTime(start), EncodeTime(end))
	if err != nil {
		return nil, err
	}
	return decodeTransactions(raws)
}

func (r *transactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	existing, err := r.FindTransactionByID(ctx, txn.ID)
	if err != nil {
		return err
	}
	value, err := json.Marshal(txn)
	if err != nil {
		return fmt.Errorf("failed to encode transaction %d: %w", txn.ID, err)
	}
	return r.store.Put(CollectionTransactions, txn.ID, value,
		transactionIndexEntries(*existing), transactionIndexEntries(txn))
}

func (r *transactionRepository) DeleteTransaction(ctx context.Context, id uint64) error {
	existing, err := r.FindTransactionByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil
		}
		return err
	}
	return r.store.Delete(CollectionTransactions, id, transactionIndexEntries(*existing))
}

func decodeTransactions(raws [][]byte) ([]domain.Transaction, error) {
	txns := make([]domain.Transaction, 0, len(raws))
	for _, raw := range raws {
		var txn domain.Transaction
		if err := json.Unmarshal(raw, &txn); err != nil {
			return nil, fmt.Errorf("failed to decode transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}
