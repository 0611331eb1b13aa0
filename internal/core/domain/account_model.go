package domain

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/google/uuid"
	"github.com/tdex-network/mvs-vault/pkg/wallet"
)

const (
	// WellKnownAddress is appended to the addresses of every imported account.
	WellKnownAddress = "MSCHL3unfVqzsZbRVCJ3yVp7RgAmXiuGN3"
	// WellKnownAddressPath is the derivation path recorded for
	// WellKnownAddress.
	WellKnownAddressPath = "m"

	// DefaultAddressCount is the number of addresses derived at import time
	// if not specified otherwise.
	DefaultAddressCount = 10

	// KeyAlgo is the value recorded in PrivateInfo.Algo.
	KeyAlgo = "none"
)

// Address is a derived address and the path it's recorded with.
type Address struct {
	Address        string `json:"address"`
	DerivationPath string `json:"derivationPath"`
}

// MultisigRef is an opaque reference to a multisig configuration the account
// takes part in.
type MultisigRef struct {
	Address string `json:"address"`
	Info    string `json:"info,omitempty"`
}

// PrivateInfo holds the metadata of the account's key material.
type PrivateInfo struct {
	Path     string        `json:"path"`
	Xpub     string        `json:"xpub"`
	Xpriv    string        `json:"xpriv"`
	Algo     string        `json:"algo"`
	Multisig []MultisigRef `json:"multisig"`
}

// AccountConfig holds the parameters an account has been imported with.
type AccountConfig struct {
	Index int `json:"index"`
}

// Account defines the entity data structure of a wallet account of the vault.
// The mnemonic is only held in encrypted form in Protected.
type Account struct {
	ID        string        `json:"id" badgerhold:"key"`
	Name      string        `json:"name" badgerhold:"index"`
	Addresses []Address     `json:"addresses"`
	Private   PrivateInfo   `json:"private"`
	Protected string        `json:"protected"`
	Config    AccountConfig `json:"config"`
	CreatedAt int64         `json:"createdAt"`
}

// NewAccountOpts is the struct given to NewAccount.
type NewAccountOpts struct {
	Name              string
	Mnemonic          string
	EncryptedMnemonic string
	Network           *chaincfg.Params
	Count             int
	BasePath          string
}

func (o NewAccountOpts) validate() error {
	if len(o.Name) <= 0 {
		return ErrNullAccountName
	}
	if len(o.EncryptedMnemonic) <= 0 {
		return ErrNullEncryptedMnemonic
	}
	// The path template must be valid before anything gets derived.
	return wallet.ValidateDerivationPathTemplate(o.BasePath)
}

// NewAccount restores the HD wallet for the given mnemonic and returns a new
// Account holding Count derived addresses plus the well-known one, the root
// key material and the encrypted mnemonic.
func NewAccount(opts NewAccountOpts) (*Account, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	w, err := wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		Mnemonic: opts.Mnemonic,
		Network:  opts.Network,
	})
	if err != nil {
		return nil, err
	}

	derived, err := w.DeriveAddresses(wallet.DeriveAddressesOpts{
		Count:    opts.Count,
		BasePath: opts.BasePath,
	})
	if err != nil {
		return nil, err
	}

	keys, err := w.RootKeyMaterial()
	if err != nil {
		return nil, err
	}

	addresses := make([]Address, 0, len(derived)+1)
	for _, d := range derived {
		addresses = append(addresses, Address{
			Address:        d.Address,
			DerivationPath: d.DerivationPath,
		})
	}
	addresses = append(addresses, Address{
		Address:        WellKnownAddress,
		DerivationPath: WellKnownAddressPath,
	})

	return &Account{
		ID:        uuid.New().String(),
		Name:      opts.Name,
		Addresses: addresses,
		Private: PrivateInfo{
			Path:     opts.BasePath,
			Xpub:     keys.Xpub,
			Xpriv:    keys.Xpriv,
			Algo:     KeyAlgo,
			Multisig: []MultisigRef{},
		},
		Protected: opts.EncryptedMnemonic,
		Config: AccountConfig{
			Index: opts.Count,
		},
		CreatedAt: time.Now().UnixNano(),
	}, nil
}

// DerivedAddresses returns the addresses of the account without the
// well-known trailing one.
func (a *Account) DerivedAddresses() []Address {
	if len(a.Addresses) <= 0 {
		return nil
	}
	return a.Addresses[:len(a.Addresses)-1]
}

// RevealMnemonic decrypts the account's mnemonic with the given passphrase.
func (a *Account) RevealMnemonic(passphrase string) (string, error) {
	return wallet.Decrypt(wallet.DecryptOpts{
		CypherText: a.Protected,
		Passphrase: passphrase,
	})
}

// AddressAtPath reveals the account's mnemonic with the given passphrase and
// returns the address at the given derivation path for the network.
func (a *Account) AddressAtPath(
	passphrase string, net *chaincfg.Params, path string,
) (*Address, error) {
	mnemonic, err := a.RevealMnemonic(passphrase)
	if err != nil {
		return nil, err
	}

	w, err := wallet.NewWalletFromMnemonic(wallet.NewWalletFromMnemonicOpts{
		Mnemonic: mnemonic,
		Network:  net,
	})
	if err != nil {
		return nil, err
	}

	derived, err := w.AddressAtPath(path)
	if err != nil {
		return nil, err
	}
	return &Address{
		Address:        derived.Address,
		DerivationPath: derived.DerivationPath,
	}, nil
}
