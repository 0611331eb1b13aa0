package dbbadger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	"github.com/timshannon/badgerhold/v4"
)

// DbManager holds all the badgerhold stores in a single data structure.
type DbManager struct {
	KVStore      *badgerhold.Store
	AccountStore *badgerhold.Store
}

// NewDbManager opens (or creates if not exists) the badger stores on disk.
// It expects a base data dir and an optional logger.
// It creates a dedicated directory for the key-value pairs of the session and
// for the working accounts. An empty dir opens the stores in memory.
func NewDbManager(baseDbDir string, logger badger.Logger) (*DbManager, error) {
	kvDb, err := createDb(dbDir(baseDbDir, "kv"), logger)
	if err != nil {
		return nil, fmt.Errorf("opening kv db: %w", err)
	}

	accountDb, err := createDb(dbDir(baseDbDir, "accounts"), logger)
	if err != nil {
		kvDb.Close()
		return nil, fmt.Errorf("opening accounts db: %w", err)
	}

	return &DbManager{
		KVStore:      kvDb,
		AccountStore: accountDb,
	}, nil
}

// Close closes all the stores.
func (d *DbManager) Close() error {
	kvErr := d.KVStore.Close()
	accountErr := d.AccountStore.Close()
	if kvErr != nil {
		return kvErr
	}
	return accountErr
}

// JSONEncode is a custom JSON based encoder for badger
func JSONEncode(value interface{}) ([]byte, error) {
	var buff bytes.Buffer

	en := json.NewEncoder(&buff)

	err := en.Encode(value)
	if err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// JSONDecode is a custom JSON based decoder for badger
func JSONDecode(data []byte, value interface{}) error {
	var buff bytes.Buffer
	de := json.NewDecoder(&buff)

	_, err := buff.Write(data)
	if err != nil {
		return err
	}

	return de.Decode(value)
}

func dbDir(baseDbDir, name string) string {
	if len(baseDbDir) <= 0 {
		return ""
	}
	return filepath.Join(baseDbDir, name)
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	var opts badger.Options
	if len(dbDir) <= 0 {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(dbDir)
		opts.Compression = options.ZSTD
	}
	opts.Logger = logger

	return badgerhold.Open(badgerhold.Options{
		Encoder:          JSONEncode,
		Decoder:          JSONDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
}
