package ports

import (
	"context"
	"encoding/json"
)

// WalletStore gives access to the live wallet state of the current session.
type WalletStore interface {
	GetSeed(ctx context.Context) (json.RawMessage, error)
	GetWallet(ctx context.Context) (json.RawMessage, error)
	SetSeed(ctx context.Context, seed json.RawMessage) error
	SetWallet(ctx context.Context, wallet json.RawMessage) error
}

// MultisigService owns the multisig configuration of the current session.
type MultisigService interface {
	GetMultisigAddresses(ctx context.Context) ([]json.RawMessage, error)
	GetMultisigInfo(ctx context.Context) ([]json.RawMessage, error)
	SetMultisigAddresses(ctx context.Context, addresses []json.RawMessage) error
	SetMultisigInfo(ctx context.Context, multisigs []json.RawMessage) error
}

// PluginService owns the plugins installed in the current session.
type PluginService interface {
	GetPlugins(ctx context.Context) ([]json.RawMessage, error)
	SetPlugins(ctx context.Context, plugins []json.RawMessage) error
}
