package collaborator

import (
	"context"
	"encoding/json"

	"github.com/tdex-network/mvs-vault/internal/core/ports"
)

type walletStore struct {
	store ports.KVStore
}

// NewWalletStore returns a ports.WalletStore keeping seed and wallet under
// their own keys of the given store.
func NewWalletStore(store ports.KVStore) ports.WalletStore {
	return &walletStore{store}
}

func (w *walletStore) GetSeed(ctx context.Context) (json.RawMessage, error) {
	return getRaw(ctx, w.store, ports.SeedKey)
}

func (w *walletStore) GetWallet(ctx context.Context) (json.RawMessage, error) {
	return getRaw(ctx, w.store, ports.WalletKey)
}

func (w *walletStore) SetSeed(ctx context.Context, seed json.RawMessage) error {
	return setRaw(ctx, w.store, ports.SeedKey, seed)
}

func (w *walletStore) SetWallet(
	ctx context.Context, wallet json.RawMessage,
) error {
	return setRaw(ctx, w.store, ports.WalletKey, wallet)
}

func getRaw(
	ctx context.Context, store ports.KVStore, key string,
) (json.RawMessage, error) {
	var v json.RawMessage
	found, err := store.Get(ctx, key, &v)
	if err != nil {
		return nil, err
	}
	if !found || string(v) == "null" {
		return nil, nil
	}
	return v, nil
}

// setRaw removes the key when the value is absent.
func setRaw(
	ctx context.Context, store ports.KVStore, key string, v json.RawMessage,
) error {
	if len(v) <= 0 || string(v) == "null" {
		return store.Remove(ctx, key)
	}
	return store.Set(ctx, key, v)
}

func getList(
	ctx context.Context, store ports.KVStore, key string,
) ([]json.RawMessage, error) {
	var list []json.RawMessage
	found, err := store.Get(ctx, key, &list)
	if err != nil {
		return nil, err
	}
	if !found || list == nil {
		return []json.RawMessage{}, nil
	}
	return list, nil
}

func setList(
	ctx context.Context, store ports.KVStore, key string, list []json.RawMessage,
) error {
	if list == nil {
		list = []json.RawMessage{}
	}
	return store.Set(ctx, key, list)
}
