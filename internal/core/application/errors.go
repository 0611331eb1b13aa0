package application

import (
	"errors"

	"github.com/tdex-network/mvs-vault/pkg/wallet"
)

var (
	// ErrSaveSession is returned when the live session can't be encrypted
	// and persisted.
	ErrSaveSession = errors.New("ERR_SAVE_SESSION_ACCOUNT")
	// ErrSaveAccount is returned when the session can't be stored in the list
	// of saved accounts.
	ErrSaveAccount = errors.New("ERR_SAVE_ACCOUNT")
	// ErrSetupAccount is returned when any of the writes restoring an account
	// into the live session fails.
	ErrSetupAccount = errors.New("ERR_SETUP_ACCOUNT")
	// ErrDeleteAccount ...
	ErrDeleteAccount = errors.New("ERR_DELETE_ACCOUNT")
	// ErrDecryptWallet is returned for wrong passphrase or corrupted content.
	ErrDecryptWallet = wallet.ErrDecrypt
	// ErrRenameAccount ...
	ErrRenameAccount = errors.New("ERR_RENAME_ACCOUNT")
	// ErrSwitchAccount ...
	ErrSwitchAccount = errors.New("ERR_SWITCH_ACCOUNT")
	// ErrImportAccount is returned when an imported account can't be built
	// from valid inputs or can't be stored.
	ErrImportAccount = errors.New("ERR_IMPORT_ACCOUNT")
	// ErrDeriveAddress ...
	ErrDeriveAddress = errors.New("ERR_DERIVE_ADDRESS")
	// ErrStorage is returned by plain accessors in case of storage faults.
	ErrStorage = errors.New("ERR_STORAGE")
)
