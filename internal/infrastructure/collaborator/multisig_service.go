package collaborator

import (
	"context"
	"encoding/json"

	"github.com/tdex-network/mvs-vault/internal/core/ports"
)

type multisigService struct {
	store ports.KVStore
}

// NewMultisigService returns a ports.MultisigService persisting the multisig
// addresses and configurations of the session in the given store.
func NewMultisigService(store ports.KVStore) ports.MultisigService {
	return &multisigService{store}
}

func (m *multisigService) GetMultisigAddresses(
	ctx context.Context,
) ([]json.RawMessage, error) {
	return getList(ctx, m.store, ports.MultisigAddressesKey)
}

func (m *multisigService) GetMultisigInfo(
	ctx context.Context,
) ([]json.RawMessage, error) {
	return getList(ctx, m.store, ports.MultisigsKey)
}

func (m *multisigService) SetMultisigAddresses(
	ctx context.Context, addresses []json.RawMessage,
) error {
	return setList(ctx, m.store, ports.MultisigAddressesKey, addresses)
}

func (m *multisigService) SetMultisigInfo(
	ctx context.Context, multisigs []json.RawMessage,
) error {
	return setList(ctx, m.store, ports.MultisigsKey, multisigs)
}
