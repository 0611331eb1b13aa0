package domain

import "errors"

var (
	// ErrNullAccountName ...
	ErrNullAccountName = errors.New("account name must not be null")
	// ErrNullEncryptedMnemonic ...
	ErrNullEncryptedMnemonic = errors.New("encrypted mnemonic must not be null")
	// ErrAccountNotFound is returned when no account matches the given name.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAccountNameTaken is returned when renaming an account with the name
	// of another existing one.
	ErrAccountNameTaken = errors.New("account name is already in use")
)
