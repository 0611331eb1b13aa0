package dbbadger

import "errors"

var (
	// ErrNullKey ...
	ErrNullKey = errors.New("key must not be null")
	// ErrAccountAlreadyExists is returned when inserting an account with an
	// id already in use.
	ErrAccountAlreadyExists = errors.New("account already exists")
)
