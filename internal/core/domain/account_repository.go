package domain

import (
	"context"
)

// AccountRepository is the collection of decrypted working accounts, those
// imported while the vault is unlocked.
type AccountRepository interface {
	// InsertAccount adds a new account to the collection and returns its id.
	InsertAccount(ctx context.Context, account Account) (string, error)
	// GetAllAccounts returns all accounts ordered by creation time.
	GetAllAccounts(ctx context.Context) ([]Account, error)
	// GetAccountByName returns the first account with the given name, or
	// ErrAccountNotFound.
	GetAccountByName(ctx context.Context, name string) (*Account, error)
	// CountAccounts returns the number of accounts in the collection.
	CountAccounts(ctx context.Context) (int, error)
}
