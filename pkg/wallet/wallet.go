package wallet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

var (
	// ErrDecrypt is returned for any failure while revealing an encrypted
	// payload: wrong passphrase, malformed envelope or malformed content.
	ErrDecrypt = errors.New("ERR_DECRYPT_WALLET")
	// ErrInvalidDerivationPath ...
	ErrInvalidDerivationPath = errors.New("invalid derivation path")
	// ErrInvalidMnemonic ...
	ErrInvalidMnemonic = errors.New("mnemonic is invalid")

	// ErrNullNetwork ...
	ErrNullNetwork = errors.New("network params are null")
	// ErrNullMnemonic ...
	ErrNullMnemonic = errors.New("mnemonic is null")
	// ErrNullPassphrase ...
	ErrNullPassphrase = errors.New("passphrase must not be null")
	// ErrNullCypherText ...
	ErrNullCypherText = errors.New("cypher to decrypt must not be null")
	// ErrNullDerivationPath ...
	ErrNullDerivationPath = errors.New("derivation path must not be null")

	// ErrInvalidCypherText ...
	ErrInvalidCypherText = errors.New("cypher must be in base64 format")
	// ErrMalformedCypherText ...
	ErrMalformedCypherText = errors.New("cypher is too short to be valid")
	// ErrInvalidEntropySize ...
	ErrInvalidEntropySize = errors.New(
		"entropy size must be a multiple of 32 in the range [128,256]",
	)
	// ErrInvalidAddressCount ...
	ErrInvalidAddressCount = errors.New("address count must not be negative")
	// ErrMalformedDerivationPath ...
	ErrMalformedDerivationPath = errors.New(
		"path must not start or end with a '/' and " +
			"can optionally start with 'm/' for absolute paths",
	)
)

// Wallet data structure allows to restore an HD wallet from mnemonic and to
// derive its root key material and addresses for a given network.
type Wallet struct {
	mnemonic  string
	masterKey *hdkeychain.ExtendedKey
	network   *chaincfg.Params
}

// NewWalletFromMnemonicOpts is the struct given to the NewWalletFromMnemonic
// method
type NewWalletFromMnemonicOpts struct {
	Mnemonic string
	Network  *chaincfg.Params
}

func (o NewWalletFromMnemonicOpts) validate() error {
	if len(strings.TrimSpace(o.Mnemonic)) <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidMnemonic, ErrNullMnemonic)
	}
	if !isMnemonicValid(o.Mnemonic) {
		return ErrInvalidMnemonic
	}
	if o.Network == nil {
		return ErrNullNetwork
	}
	return nil
}

// NewWalletFromMnemonic generates the seed and the master key from the
// provided mnemonic for the given network.
func NewWalletFromMnemonic(opts NewWalletFromMnemonicOpts) (*Wallet, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	mnemonic := normalizeMnemonic(opts.Mnemonic)
	seed, err := generateSeedFromMnemonic(mnemonic)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMnemonic, err)
	}
	masterKey, err := hdkeychain.NewMaster(seed, opts.Network)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMnemonic, err)
	}

	return &Wallet{
		mnemonic:  mnemonic,
		masterKey: masterKey,
		network:   opts.Network,
	}, nil
}

// Mnemonic is getter for the wallet's mnemonic
func (w *Wallet) Mnemonic() string {
	return w.mnemonic
}

// Network returns the network params the wallet derives addresses for.
func (w *Wallet) Network() *chaincfg.Params {
	return w.network
}
