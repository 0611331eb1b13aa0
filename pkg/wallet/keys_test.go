package wallet

import (
	"strings"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/require"
)

func TestRootKeyMaterial(t *testing.T) {
	wallet, err := newTestWallet()
	require.NoError(t, err)

	keys, err := wallet.RootKeyMaterial()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(keys.Xpriv, "xprv"))
	require.True(t, strings.HasPrefix(keys.Xpub, "xpub"))

	testnetWallet, err := NewWalletFromMnemonic(NewWalletFromMnemonicOpts{
		Mnemonic: testMnemonic,
		Network:  MvsTestNet,
	})
	require.NoError(t, err)
	testnetKeys, err := testnetWallet.RootKeyMaterial()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(testnetKeys.Xpriv, "tprv"))
	require.True(t, strings.HasPrefix(testnetKeys.Xpub, "tpub"))
}

func TestDeriveAddresses(t *testing.T) {
	wallet, err := newTestWallet()
	require.NoError(t, err)

	addresses, err := wallet.DeriveAddresses(DeriveAddressesOpts{
		Count:    3,
		BasePath: "m/0",
	})
	require.NoError(t, err)
	require.Len(t, addresses, 3)

	seen := make(map[string]struct{})
	for _, addr := range addresses {
		require.True(t, strings.HasPrefix(addr.Address, "M"))
		// all addresses are recorded with the path expanded by the count.
		require.Equal(t, "m/3", addr.DerivationPath)
		seen[addr.Address] = struct{}{}
	}
	require.Len(t, seen, 3)

	// i-th address is the one of the root's i-th child.
	for i, addr := range addresses {
		expected, err := wallet.AddressAtPath("m/" + []string{"0", "1", "2"}[i])
		require.NoError(t, err)
		require.Equal(t, expected.Address, addr.Address)
	}
}

func TestDeriveAddressesIsDeterministic(t *testing.T) {
	first := deriveAddresses(t, MvsMainNet, 5, "m/44'/0/0")
	second := deriveAddresses(t, MvsMainNet, 5, "m/44'/0/0")
	require.Equal(t, first, second)
	require.Equal(t, "m/44'/0/5", first[0].DerivationPath)

	testnet := deriveAddresses(t, MvsTestNet, 5, "m/44'/0/0")
	require.NotEqual(t, first[0].Address, testnet[0].Address)
	require.True(t, strings.HasPrefix(testnet[0].Address, "t"))
}

func TestDeriveNoAddresses(t *testing.T) {
	addresses := deriveAddresses(t, MvsMainNet, 0, "m/0")
	require.Empty(t, addresses)
}

func TestFailingDeriveAddresses(t *testing.T) {
	wallet, err := newTestWallet()
	require.NoError(t, err)

	tests := []struct {
		name     string
		count    int
		basePath string
		err      error
	}{
		{
			name:     "invalid path",
			count:    2,
			basePath: "bad/path",
			err:      ErrInvalidDerivationPath,
		},
		{
			name:     "hardened last component",
			count:    2,
			basePath: "m/0'",
			err:      ErrInvalidDerivationPath,
		},
		{
			name:     "negative count",
			count:    -1,
			basePath: "m/0",
			err:      ErrInvalidAddressCount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := wallet.DeriveAddresses(DeriveAddressesOpts{
				Count:    tt.count,
				BasePath: tt.basePath,
			})
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestAddressAtPath(t *testing.T) {
	wallet, err := newTestWallet()
	require.NoError(t, err)

	addr, err := wallet.AddressAtPath("m/44'/2302'/0'/0/0")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(addr.Address, "M"))
	require.Equal(t, "m/44'/2302'/0'/0/0", addr.DerivationPath)

	relative, err := wallet.AddressAtPath(" 44' / 2302'/0'/0/0")
	require.NoError(t, err)
	require.Equal(t, *addr, *relative)

	tests := []string{"", "m", "m/", "m/0x", "m/4294967296"}
	for _, path := range tests {
		_, err := wallet.AddressAtPath(path)
		require.ErrorIs(t, err, ErrInvalidDerivationPath, path)
	}
}

func deriveAddresses(
	t *testing.T, net *chaincfg.Params, count int, basePath string,
) []DerivedAddress {
	t.Helper()

	wallet, err := NewWalletFromMnemonic(NewWalletFromMnemonicOpts{
		Mnemonic: testMnemonic,
		Network:  net,
	})
	require.NoError(t, err)
	addresses, err := wallet.DeriveAddresses(DeriveAddressesOpts{
		Count:    count,
		BasePath: basePath,
	})
	require.NoError(t, err)
	return addresses
}
