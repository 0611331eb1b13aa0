package inmemory

import (
	"context"
	"sort"

	"github.com/tdex-network/mvs-vault/internal/core/domain"
)

// AccountRepositoryImpl represents an in memory storage
type AccountRepositoryImpl struct {
	db *DbManager
}

// NewAccountRepositoryImpl returns a new empty AccountRepositoryImpl
func NewAccountRepositoryImpl(db *DbManager) domain.AccountRepository {
	return &AccountRepositoryImpl{db}
}

func (r *AccountRepositoryImpl) InsertAccount(
	_ context.Context, account domain.Account,
) (string, error) {
	r.db.accountStore.locker.Lock()
	defer r.db.accountStore.locker.Unlock()

	if _, ok := r.db.accountStore.accounts[account.ID]; ok {
		return "", ErrAccountAlreadyExists
	}
	r.db.accountStore.accounts[account.ID] = account
	return account.ID, nil
}

func (r *AccountRepositoryImpl) GetAllAccounts(
	_ context.Context,
) ([]domain.Account, error) {
	r.db.accountStore.locker.RLock()
	defer r.db.accountStore.locker.RUnlock()

	return r.getAllAccounts(), nil
}

func (r *AccountRepositoryImpl) GetAccountByName(
	_ context.Context, name string,
) (*domain.Account, error) {
	r.db.accountStore.locker.RLock()
	defer r.db.accountStore.locker.RUnlock()

	for _, account := range r.getAllAccounts() {
		if account.Name == name {
			a := account
			return &a, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *AccountRepositoryImpl) CountAccounts(_ context.Context) (int, error) {
	r.db.accountStore.locker.RLock()
	defer r.db.accountStore.locker.RUnlock()

	return len(r.db.accountStore.accounts), nil
}

func (r *AccountRepositoryImpl) getAllAccounts() []domain.Account {
	accounts := make([]domain.Account, 0, len(r.db.accountStore.accounts))
	for _, account := range r.db.accountStore.accounts {
		accounts = append(accounts, account)
	}
	sort.SliceStable(accounts, func(i, j int) bool {
		if accounts[i].CreatedAt == accounts[j].CreatedAt {
			return accounts[i].ID < accounts[j].ID
		}
		return accounts[i].CreatedAt < accounts[j].CreatedAt
	})
	return accounts
}
