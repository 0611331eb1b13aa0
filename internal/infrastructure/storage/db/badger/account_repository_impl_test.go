package dbbadger_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/tdex-network/mvs-vault/internal/core/domain"
	dbbadger "github.com/tdex-network/mvs-vault/internal/infrastructure/storage/db/badger"
)

func TestAccountRepository(t *testing.T) {
	dbManager := newTestDbManager(t, "")
	repo := dbbadger.NewAccountRepositoryImpl(dbManager.AccountStore)

	count, err := repo.CountAccounts(ctx)
	require.NoError(t, err)
	require.Zero(t, count)

	accounts := []domain.Account{
		newTestAccount("account2", 2),
		newTestAccount("account1", 1),
		newTestAccount("account3", 3),
	}
	for _, a := range accounts {
		id, err := repo.InsertAccount(ctx, a)
		require.NoError(t, err)
		require.Equal(t, a.ID, id)
	}

	_, err = repo.InsertAccount(ctx, accounts[0])
	require.ErrorIs(t, err, dbbadger.ErrAccountAlreadyExists)

	count, err = repo.CountAccounts(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	all, err := repo.GetAllAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, a := range all {
		require.Equal(t, int64(i+1), a.CreatedAt)
	}

	account, err := repo.GetAccountByName(ctx, "account3")
	require.NoError(t, err)
	require.Equal(t, accounts[2].ID, account.ID)
	require.Equal(t, accounts[2].Addresses, account.Addresses)

	_, err = repo.GetAccountByName(ctx, "unknown")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func newTestAccount(name string, createdAt int64) domain.Account {
	return domain.Account{
		ID:   uuid.New().String(),
		Name: name,
		Addresses: []domain.Address{
			{Address: domain.WellKnownAddress, DerivationPath: domain.WellKnownAddressPath},
		},
		Private: domain.PrivateInfo{
			Path:     "m/0",
			Algo:     domain.KeyAlgo,
			Multisig: []domain.MultisigRef{},
		},
		Protected: "cypher",
		CreatedAt: createdAt,
	}
}
