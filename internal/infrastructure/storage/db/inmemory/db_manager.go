package inmemory

import (
	"sync"

	"github.com/tdex-network/mvs-vault/internal/core/domain"
)

type kvInmemoryStore struct {
	values map[string][]byte
	locker *sync.RWMutex
}

type accountInmemoryStore struct {
	accounts map[string]domain.Account
	locker   *sync.RWMutex
}

// DbManager holds all the in memory stores in a single data structure.
type DbManager struct {
	kvStore      *kvInmemoryStore
	accountStore *accountInmemoryStore
}

// NewDbManager returns a new empty DbManager.
func NewDbManager() *DbManager {
	return &DbManager{
		kvStore: &kvInmemoryStore{
			values: map[string][]byte{},
			locker: &sync.RWMutex{},
		},
		accountStore: &accountInmemoryStore{
			accounts: map[string]domain.Account{},
			locker:   &sync.RWMutex{},
		},
	}
}
