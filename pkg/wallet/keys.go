package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// RootKeys holds the extended keys of the wallet's root in base58 format.
type RootKeys struct {
	Xpub  string
	Xpriv string
}

// DerivedAddress is an address together with the derivation path it is
// recorded with.
type DerivedAddress struct {
	Address        string
	DerivationPath string
}

// RootKeyMaterial returns the extended private and public keys of the wallet
// root, encoded with the HD version bytes of the wallet's network.
func (w *Wallet) RootKeyMaterial() (*RootKeys, error) {
	xpub, err := w.masterKey.Neuter()
	if err != nil {
		return nil, err
	}
	return &RootKeys{
		Xpub:  xpub.String(),
		Xpriv: w.masterKey.String(),
	}, nil
}

// DeriveAddressesOpts is the struct given to DeriveAddresses method
type DeriveAddressesOpts struct {
	Count    int
	BasePath string
}

func (o DeriveAddressesOpts) validate() error {
	if o.Count < 0 {
		return ErrInvalidAddressCount
	}
	return ValidateDerivationPathTemplate(o.BasePath)
}

// DeriveAddresses derives Count addresses, the i-th being the P2PKH address of
// the root's child i.
// Every address is recorded with BasePath expanded with Count rather than with
// its own child index. Stored accounts rely on this format.
func (w *Wallet) DeriveAddresses(
	opts DeriveAddressesOpts,
) ([]DerivedAddress, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	addresses := make([]DerivedAddress, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		path, err := ExpandDerivationPath(opts.BasePath, opts.Count)
		if err != nil {
			return nil, err
		}
		addr, err := w.childAddress(uint32(i))
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, DerivedAddress{
			Address:        addr,
			DerivationPath: path,
		})
	}
	return addresses, nil
}

// AddressAtPath returns the P2PKH address of the key at the given derivation
// path, recorded with the path in its canonical form.
func (w *Wallet) AddressAtPath(path string) (*DerivedAddress, error) {
	parsed, err := ParseDerivationPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDerivationPath, err)
	}

	key, err := w.deriveKey(parsed)
	if err != nil {
		return nil, err
	}
	pubkey, err := key.ECPubKey()
	if err != nil {
		return nil, err
	}
	addr, err := p2pkhAddress(pubkey, w.network)
	if err != nil {
		return nil, err
	}
	return &DerivedAddress{
		Address:        addr,
		DerivationPath: parsed.String(),
	}, nil
}

func (w *Wallet) childAddress(index uint32) (string, error) {
	child, err := w.masterKey.Derive(index)
	if err != nil {
		return "", err
	}
	pubkey, err := child.ECPubKey()
	if err != nil {
		return "", err
	}
	return p2pkhAddress(pubkey, w.network)
}

func (w *Wallet) deriveKey(
	path DerivationPath,
) (*hdkeychain.ExtendedKey, error) {
	hdNode := w.masterKey
	for _, step := range path {
		var err error
		hdNode, err = hdNode.Derive(step)
		if err != nil {
			return nil, err
		}
	}
	return hdNode, nil
}
