package badgerdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/budgetplanner/budget_planner_app/internal/core/domain"
	portsrepo "github.com/budgetplanner/budget_planner_app/internal/core/ports/repositories"
)

type accountRepository struct {
	store *Store
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(store *Store) portsrepo.AccountRepositoryFacade {
	return &accountRepository{store: store}
}

var _ portsrepo.AccountRepositoryFacade = (*accountRepository)(nil)

// accountIndexEntries returns the secondary-index postings for an account:
// by name and by currency.
func accountIndexEntries(a domain.Account) []IndexEntry {
	return []IndexEntry{
		{Index: IndexName, Value: []byte(a.Name)},
		{Index: IndexCurrency, Value: []byte(a.Currency)},
	}
}

func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) (uint64, error) {
	return r.store.Insert(CollectionAccounts, func(id uint64) ([]byte, []IndexEntry, error) {
		account.ID = id
		value, err := json.Marshal(account)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode account: %w", err)
		}
		return value, accountIndexEntries(account), nil
	})
}

func (r *accountRepository) FindAccountByID(ctx context.Context, id uint64) (*domain.Account, error) {
	raw, err := r.store.Get(CollectionAccounts, id)
	if err != nil {
		return nil, err
	}
	var account domain.Account
	if err := json.Unmarshal(raw, &account); err != nil {
		return nil, fmt.Errorf("failed to decode account %d: %w", id, err)
	}
	return &account, nil
}

func (r *accountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	raws, err := r.store.List(CollectionAccounts)
	if err != nil {
		return nil, err
	}
	accounts := make([]domain.Account, 0, len(raws))
	for _, raw := range raws {
		var account domain.Account
		if err := json.Unmarshal(raw, &account); err != nil {
			return nil, fmt.Errorf("failed to decode account: %w", err)
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (r *accountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	existing, err := r.FindAccountByID(ctx, account.ID)
	if err != nil {
		return err
	}
	value, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to encode account %d: %w", account.ID, err)
	}
	return r.store.Put(CollectionAccounts, account.ID, value,
		accountIndexEntries(*existing), accountIndexEntries(account))
}

func (r *accountRepository) DeleteAccount(ctx context.Context, id uint64) error {
	existing, err := r.FindAccountByID(ctx, id)
	if err != nil {
		// Delete is idempotent: an absent id is not an error.
		if isNotFound(err) {
			return nil
		}
		return err
	}
	return r.store.Delete(CollectionAccounts, id, accountIndexEntries(*existing))
}
