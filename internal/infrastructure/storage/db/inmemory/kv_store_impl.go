package inmemory

import (
	"context"
	"encoding/json"

	"github.com/tdex-network/mvs-vault/internal/core/ports"
)

// KVStoreImpl represents an in memory storage
type KVStoreImpl struct {
	db *DbManager
}

// NewKVStoreImpl returns a new empty KVStoreImpl. Values are kept JSON
// encoded so that callers never share memory with the store.
func NewKVStoreImpl(db *DbManager) ports.KVStore {
	return &KVStoreImpl{db}
}

func (s *KVStoreImpl) Get(
	_ context.Context, key string, v interface{},
) (bool, error) {
	if len(key) <= 0 {
		return false, ErrNullKey
	}

	s.db.kvStore.locker.RLock()
	buf, ok := s.db.kvStore.values[key]
	s.db.kvStore.locker.RUnlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(buf, v); err != nil {
		return false, err
	}
	return true, nil
}

func (s *KVStoreImpl) Set(_ context.Context, key string, v interface{}) error {
	if len(key) <= 0 {
		return ErrNullKey
	}

	buf, err := json.Marshal(v)
	if err != nil {
		return err
	}

	s.db.kvStore.locker.Lock()
	defer s.db.kvStore.locker.Unlock()

	s.db.kvStore.values[key] = buf
	return nil
}

func (s *KVStoreImpl) Remove(_ context.Context, key string) error {
	if len(key) <= 0 {
		return ErrNullKey
	}

	s.db.kvStore.locker.Lock()
	defer s.db.kvStore.locker.Unlock()

	delete(s.db.kvStore.values, key)
	return nil
}

func (s *KVStoreImpl) Close() error {
	return nil
}
