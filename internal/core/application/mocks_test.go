package application_test

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

// **** KV store ****

type mockKVStore struct {
	mock.Mock
}

func (m *mockKVStore) Get(
	ctx context.Context, key string, v interface{},
) (bool, error) {
	args := m.Called(ctx, key, v)

	var res bool
	if a := args.Get(0); a != nil {
		res = a.(bool)
	}
	return res, args.Error(1)
}

func (m *mockKVStore) Set(ctx context.Context, key string, v interface{}) error {
	args := m.Called(ctx, key, v)
	return args.Error(0)
}

func (m *mockKVStore) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockKVStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// **** Wallet store ****

type mockWalletStore struct {
	mock.Mock
}

func (m *mockWalletStore) GetSeed(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)

	var res json.RawMessage
	if a := args.Get(0); a != nil {
		res = a.(json.RawMessage)
	}
	return res, args.Error(1)
}

func (m *mockWalletStore) GetWallet(ctx context.Context) (json.RawMessage, error) {
	args := m.Called(ctx)

	var res json.RawMessage
	if a := args.Get(0); a != nil {
		res = a.(json.RawMessage)
	}
	return res, args.Error(1)
}

func (m *mockWalletStore) SetSeed(ctx context.Context, seed json.RawMessage) error {
	args := m.Called(ctx, seed)
	return args.Error(0)
}

func (m *mockWalletStore) SetWallet(
	ctx context.Context, wallet json.RawMessage,
) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

// **** Plugin service ****

type mockPluginService struct {
	mock.Mock
}

func (m *mockPluginService) GetPlugins(
	ctx context.Context,
) ([]json.RawMessage, error) {
	args := m.Called(ctx)

	var res []json.RawMessage
	if a := args.Get(0); a != nil {
		res = a.([]json.RawMessage)
	}
	return res, args.Error(1)
}

func (m *mockPluginService) SetPlugins(
	ctx context.Context, plugins []json.RawMessage,
) error {
	args := m.Called(ctx, plugins)
	return args.Error(0)
}
