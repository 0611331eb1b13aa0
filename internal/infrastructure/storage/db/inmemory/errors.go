package inmemory

import "errors"

var (
	// ErrNullKey ...
	ErrNullKey = errors.New("key must not be null")
	// ErrAccountAlreadyExists ...
	ErrAccountAlreadyExists = errors.New("account already exists")
)
