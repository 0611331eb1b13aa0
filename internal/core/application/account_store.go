package application

import (
	"context"
	"sync"

	"github.com/tdex-network/mvs-vault/internal/core/domain"
	"github.com/tdex-network/mvs-vault/internal/core/ports"
)

// AccountStore persists the list of saved (encrypted) accounts in the
// key-value store, the collection of working accounts in the repository and
// keeps track of the active account.
type AccountStore struct {
	store    ports.KVStore
	accounts domain.AccountRepository
	feed     ports.AccountFeed

	// serializes read-modify-write cycles of the saved accounts list.
	lock sync.Mutex
}

// NewAccountStore returns a new AccountStore.
func NewAccountStore(
	store ports.KVStore,
	accounts domain.AccountRepository,
	feed ports.AccountFeed,
) *AccountStore {
	return &AccountStore{
		store:    store,
		accounts: accounts,
		feed:     feed,
	}
}

// ListSaved returns the saved accounts in insertion order. The returned list
// is never nil.
func (s *AccountStore) ListSaved(ctx context.Context) (domain.SavedAccounts, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.listSaved(ctx)
}

// Upsert replaces the first saved account with the same name in place, or
// appends the record otherwise.
func (s *AccountStore) Upsert(
	ctx context.Context, record domain.SavedAccountRecord,
) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	saved, err := s.listSaved(ctx)
	if err != nil {
		return err
	}

	updated, _ := saved.Upsert(record)
	return s.store.Set(ctx, ports.SavedAccountsKey, updated)
}

// DeleteByName removes the first saved account with the given name and
// returns whether any got removed. The list is not written if nothing
// matches.
func (s *AccountStore) DeleteByName(ctx context.Context, name string) (bool, error) {
	if len(name) <= 0 {
		return false, nil
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	saved, err := s.listSaved(ctx)
	if err != nil {
		return false, err
	}

	updated, deleted := saved.DeleteByName(name)
	if !deleted {
		return false, nil
	}
	if err := s.store.Set(ctx, ports.SavedAccountsKey, updated); err != nil {
		return false, err
	}
	return true, nil
}

// Rename changes the name of a saved account, keeping its position.
func (s *AccountStore) Rename(ctx context.Context, oldName, newName string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	saved, err := s.listSaved(ctx)
	if err != nil {
		return err
	}

	updated, err := saved.Rename(oldName, newName)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, ports.SavedAccountsKey, updated)
}

// ActiveAccount returns a stream of the active account. The current one, if
// any, is delivered right away. The stream ends when the returned cancel
// func is called or the context is done.
func (s *AccountStore) ActiveAccount(
	ctx context.Context,
) (<-chan domain.Account, func()) {
	ch, unsubscribe := s.feed.Subscribe()

	stop := make(chan struct{})
	once := &sync.Once{}
	cancel := func() {
		once.Do(func() {
			close(stop)
			unsubscribe()
		})
	}

	if done := ctx.Done(); done != nil {
		go func() {
			select {
			case <-done:
				cancel()
			case <-stop:
			}
		}()
	}
	return ch, cancel
}

// Insert adds the account to the collection of working accounts and makes
// it the active one.
func (s *AccountStore) Insert(
	ctx context.Context, account domain.Account,
) (string, error) {
	id, err := s.accounts.InsertAccount(ctx, account)
	if err != nil {
		return "", err
	}
	s.feed.Publish(account)
	return id, nil
}

// CountAccounts returns the number of working accounts.
func (s *AccountStore) CountAccounts(ctx context.Context) (int, error) {
	return s.accounts.CountAccounts(ctx)
}

// GetAccounts returns all working accounts ordered by creation.
func (s *AccountStore) GetAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.GetAllAccounts(ctx)
}

// GetAccount returns the first working account with the given name, or
// domain.ErrAccountNotFound.
func (s *AccountStore) GetAccount(
	ctx context.Context, name string,
) (*domain.Account, error) {
	return s.accounts.GetAccountByName(ctx, name)
}

// SetActive makes the working account with the given name the active one.
func (s *AccountStore) SetActive(ctx context.Context, name string) error {
	account, err := s.accounts.GetAccountByName(ctx, name)
	if err != nil {
		return err
	}
	s.feed.Publish(*account)
	return nil
}

func (s *AccountStore) listSaved(ctx context.Context) (domain.SavedAccounts, error) {
	var saved domain.SavedAccounts
	if _, err := s.store.Get(ctx, ports.SavedAccountsKey, &saved); err != nil {
		return nil, err
	}
	if saved == nil {
		saved = domain.SavedAccounts{}
	}
	return saved, nil
}
