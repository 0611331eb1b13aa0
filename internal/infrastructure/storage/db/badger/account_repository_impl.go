package dbbadger

import (
	"context"
	"sort"

	"github.com/tdex-network/mvs-vault/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type accountRepositoryImpl struct {
	store *badgerhold.Store
}

// NewAccountRepositoryImpl returns a domain.AccountRepository backed by the
// given badgerhold store.
func NewAccountRepositoryImpl(store *badgerhold.Store) domain.AccountRepository {
	return &accountRepositoryImpl{store}
}

func (r *accountRepositoryImpl) InsertAccount(
	_ context.Context, account domain.Account,
) (string, error) {
	if err := r.store.Insert(account.ID, account); err != nil {
		if err == badgerhold.ErrKeyExists {
			return "", ErrAccountAlreadyExists
		}
		return "", err
	}
	return account.ID, nil
}

func (r *accountRepositoryImpl) GetAllAccounts(
	_ context.Context,
) ([]domain.Account, error) {
	var accounts []domain.Account
	if err := r.store.Find(&accounts, nil); err != nil {
		return nil, err
	}

	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt < accounts[j].CreatedAt
	})
	return accounts, nil
}

func (r *accountRepositoryImpl) GetAccountByName(
	ctx context.Context, name string,
) (*domain.Account, error) {
	query := badgerhold.Where("Name").Eq(name).Index("Name")

	var accounts []domain.Account
	if err := r.store.Find(&accounts, query); err != nil {
		return nil, err
	}
	if len(accounts) <= 0 {
		return nil, domain.ErrAccountNotFound
	}

	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt < accounts[j].CreatedAt
	})
	return &accounts[0], nil
}

func (r *accountRepositoryImpl) CountAccounts(_ context.Context) (int, error) {
	count, err := r.store.Count(&domain.Account{}, nil)
	if err != nil {
		return -1, err
	}
	return int(count), nil
}
