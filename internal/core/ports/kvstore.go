package ports

import "context"

const (
	// AccountInfoKey is the live session slot, holding the encrypted
	// SessionAccountInfo of the current account.
	AccountInfoKey = "account_info"
	// AccountNameKey holds the name of the current account.
	AccountNameKey = "account_name"
	// SavedAccountsKey holds the list of saved accounts.
	SavedAccountsKey = "saved_accounts"

	// Keys owned by collaborators.
	WalletKey            = "wallet"
	SeedKey              = "seed"
	MultisigAddressesKey = "multisig_addresses"
	MultisigsKey         = "multisigs"
	PluginsKey           = "plugins"
)

// KVStore is a durable mapping from string keys to JSON serializable values.
// It guarantees read-after-write consistency for a single key but no
// atomicity across keys.
type KVStore interface {
	// Get unmarshals the value stored for key into v and returns whether the
	// key exists.
	Get(ctx context.Context, key string, v interface{}) (bool, error)
	// Set atomically replaces the value stored for key.
	Set(ctx context.Context, key string, v interface{}) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	// Close releases the resources of the store.
	Close() error
}
