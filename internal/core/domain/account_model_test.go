package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tdex-network/mvs-vault/internal/core/domain"
	"github.com/tdex-network/mvs-vault/pkg/wallet"
)

const (
	mnemonic   = "test test test test test test test test test test test junk"
	passphrase = "pw"
)

func TestNewAccount(t *testing.T) {
	encryptedMnemonic, err := wallet.Encrypt(wallet.EncryptOpts{
		PlainText:  mnemonic,
		Passphrase: passphrase,
	})
	require.NoError(t, err)

	account, err := domain.NewAccount(domain.NewAccountOpts{
		Name:              "account1",
		Mnemonic:          mnemonic,
		EncryptedMnemonic: encryptedMnemonic,
		Network:           wallet.MvsMainNet,
		Count:             2,
		BasePath:          "m/0",
	})
	require.NoError(t, err)
	require.NotEmpty(t, account.ID)
	require.Equal(t, "account1", account.Name)
	require.Equal(t, 2, account.Config.Index)
	require.Len(t, account.Addresses, 3)
	require.Len(t, account.DerivedAddresses(), 2)

	last := account.Addresses[2]
	require.Equal(t, domain.WellKnownAddress, last.Address)
	require.Equal(t, domain.WellKnownAddressPath, last.DerivationPath)
	for _, addr := range account.DerivedAddresses() {
		require.Equal(t, "m/2", addr.DerivationPath)
	}

	keys, err := mustWallet(t).RootKeyMaterial()
	require.NoError(t, err)
	require.Equal(t, keys.Xpub, account.Private.Xpub)
	require.Equal(t, keys.Xpriv, account.Private.Xpriv)
	require.Equal(t, "m/0", account.Private.Path)
	require.Equal(t, domain.KeyAlgo, account.Private.Algo)
	require.NotNil(t, account.Private.Multisig)

	require.Equal(t, encryptedMnemonic, account.Protected)
	revealed, err := account.RevealMnemonic(passphrase)
	require.NoError(t, err)
	require.Equal(t, mnemonic, revealed)

	_, err = account.RevealMnemonic("wrong")
	require.ErrorIs(t, err, wallet.ErrDecrypt)
}

func TestNewAccountWithoutDerivedAddresses(t *testing.T) {
	account, err := domain.NewAccount(domain.NewAccountOpts{
		Name:              "account1",
		Mnemonic:          mnemonic,
		EncryptedMnemonic: "cypher",
		Network:           wallet.MvsMainNet,
		Count:             0,
		BasePath:          "m/0",
	})
	require.NoError(t, err)
	require.Zero(t, account.Config.Index)
	require.Len(t, account.Addresses, 1)
	require.Empty(t, account.DerivedAddresses())
	require.Equal(t, domain.WellKnownAddress, account.Addresses[0].Address)
}

func TestAccountAddressAtPath(t *testing.T) {
	encryptedMnemonic, err := wallet.Encrypt(wallet.EncryptOpts{
		PlainText:  mnemonic,
		Passphrase: passphrase,
	})
	require.NoError(t, err)

	account, err := domain.NewAccount(domain.NewAccountOpts{
		Name:              "account1",
		Mnemonic:          mnemonic,
		EncryptedMnemonic: encryptedMnemonic,
		Network:           wallet.MvsMainNet,
		Count:             2,
		BasePath:          "m/0",
	})
	require.NoError(t, err)

	// the i-th derived address is the one of the root's i-th child.
	for i, expected := range account.DerivedAddresses() {
		addr, err := account.AddressAtPath(
			passphrase, wallet.MvsMainNet, []string{"m/0", "m/1"}[i],
		)
		require.NoError(t, err)
		require.Equal(t, expected.Address, addr.Address)
	}

	addr, err := account.AddressAtPath(passphrase, wallet.MvsTestNet, "0/1")
	require.NoError(t, err)
	require.Equal(t, "m/0/1", addr.DerivationPath)
	require.Equal(t, byte('t'), addr.Address[0])

	_, err = account.AddressAtPath("wrong", wallet.MvsMainNet, "m/0")
	require.ErrorIs(t, err, wallet.ErrDecrypt)

	_, err = account.AddressAtPath(passphrase, wallet.MvsMainNet, "m/")
	require.ErrorIs(t, err, wallet.ErrInvalidDerivationPath)
}

func TestFailingNewAccount(t *testing.T) {
	tests := []struct {
		name string
		opts domain.NewAccountOpts
		err  error
	}{
		{
			name: "missing name",
			opts: domain.NewAccountOpts{
				Mnemonic:          mnemonic,
				EncryptedMnemonic: "cypher",
				Network:           wallet.MvsMainNet,
				Count:             2,
				BasePath:          "m/0",
			},
			err: domain.ErrNullAccountName,
		},
		{
			name: "missing encrypted mnemonic",
			opts: domain.NewAccountOpts{
				Name:     "account1",
				Mnemonic: mnemonic,
				Network:  wallet.MvsMainNet,
				Count:    2,
				BasePath: "m/0",
			},
			err: domain.ErrNullEncryptedMnemonic,
		},
		{
			name: "invalid path",
			opts: domain.NewAccountOpts{
				Name:              "account1",
				Mnemonic:          "invalid mnemonic",
				EncryptedMnemonic: "cypher",
				Network:           wallet.MvsMainNet,
				Count:             2,
				BasePath:          "bad/path",
			},
			err: wallet.ErrInvalidDerivationPath,
		},
		{
			name: "negative count",
			opts: domain.NewAccountOpts{
				Name:              "account1",
				Mnemonic:          mnemonic,
				EncryptedMnemonic: "cypher",
				Network:           wallet.MvsMainNet,
				Count:             -1,
				BasePath:          "m/0",
			},
			err: wallet.ErrInvalidAddressCount,
		},
		{
			name: "invalid mnemonic",
			opts: domain.NewAccountOpts{
				Name:              "account1",
				Mnemonic:          "invalid mnemonic",
				EncryptedMnemonic: "cypher",
				Network:           wallet.MvsMainNet,
				Count:             2,
				BasePath:          "m/0",
			},
			err: wallet.ErrInvalidMnemonic,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewAccount(tt.opts)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func mustWallet(t *testing.T) *wallet.Wallet {
	w, err := wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		Mnemonic: mnemonic,
		Network:  wallet.MvsMainNet,
	})
	require.NoError(t, err)
	return w
}
