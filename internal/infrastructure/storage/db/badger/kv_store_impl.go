package dbbadger

import (
	"context"
	"encoding/json"

	"github.com/tdex-network/mvs-vault/internal/core/ports"
	"github.com/timshannon/badgerhold/v4"
)

// kvEntry is the record persisted for every key. The value is kept as raw
// JSON so that it can be decoded into whatever type the caller expects.
type kvEntry struct {
	Value json.RawMessage
}

type kvStoreImpl struct {
	store *badgerhold.Store
}

// NewKVStoreImpl returns a ports.KVStore backed by the given badgerhold
// store. Every Set is a single badger transaction.
func NewKVStoreImpl(store *badgerhold.Store) ports.KVStore {
	return &kvStoreImpl{store}
}

func (s *kvStoreImpl) Get(
	_ context.Context, key string, v interface{},
) (bool, error) {
	if len(key) <= 0 {
		return false, ErrNullKey
	}

	var entry kvEntry
	if err := s.store.Get(key, &entry); err != nil {
		if err == badgerhold.ErrNotFound {
			return false, nil
		}
		return false, err
	}

	if err := json.Unmarshal(entry.Value, v); err != nil {
		return false, err
	}
	return true, nil
}

func (s *kvStoreImpl) Set(_ context.Context, key string, v interface{}) error {
	if len(key) <= 0 {
		return ErrNullKey
	}

	buf, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.store.Upsert(key, kvEntry{buf})
}

func (s *kvStoreImpl) Remove(_ context.Context, key string) error {
	if len(key) <= 0 {
		return ErrNullKey
	}

	if err := s.store.Delete(key, kvEntry{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil
		}
		return err
	}
	return nil
}

func (s *kvStoreImpl) Close() error {
	return s.store.Close()
}
