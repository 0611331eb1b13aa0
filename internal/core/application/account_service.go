package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	log "github.com/sirupsen/logrus"
	"github.com/tdex-network/mvs-vault/internal/core/domain"
	"github.com/tdex-network/mvs-vault/internal/core/ports"
	"github.com/tdex-network/mvs-vault/pkg/wallet"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultAccountName is returned by GetAccountName if no name is set.
	DefaultAccountName = "Default account"

	defaultAccountNamePrefix = "account"
)

// AccountService is the session manager of the vault. It imports accounts
// from encrypted mnemonics, saves the live session under a name, restores
// saved accounts into the session and keeps track of the active account.
type AccountService interface {
	ImportEncryptedMnemonic(ctx context.Context, opts ImportOpts) (string, error)
	SaveSessionAccount(ctx context.Context, passphrase string) error
	SaveAccount(ctx context.Context, name string) error
	SetupAccount(
		ctx context.Context, name string, info domain.SessionAccountInfo,
	) error
	DeleteAccount(ctx context.Context, name string) error
	DecryptAccount(
		ctx context.Context, content, passphrase string,
	) (*domain.SessionAccountInfo, error)
	Reset(ctx context.Context) error
	RenameAccount(ctx context.Context, oldName, newName string) error
	SwitchAccount(ctx context.Context, name, passphrase string) error

	GetSessionAccountInfo(ctx context.Context) (string, error)
	GetAccountName(ctx context.Context) (string, error)
	SetAccountName(ctx context.Context, name string) error
	GetSavedAccounts(ctx context.Context) (domain.SavedAccounts, error)
	GetAccounts(ctx context.Context) ([]domain.Account, error)
	DeriveAddress(
		ctx context.Context, opts DeriveAddressOpts,
	) (*domain.Address, error)
	ActiveAccount(ctx context.Context) (<-chan domain.Account, func())
}

// ImportOpts is the struct given to ImportEncryptedMnemonic.
// A nil Network or Count and an empty BasePath are replaced by the MVS
// mainnet, 10 addresses and m/0. A Count of zero derives no address at all.
// An empty Name makes the account be named after the number of existing
// accounts.
type ImportOpts struct {
	EncryptedMnemonic string
	Passphrase        string
	Network           *chaincfg.Params
	Count             *int
	BasePath          string
	Name              string
}

func (o ImportOpts) withDefaults() ImportOpts {
	if o.Network == nil {
		o.Network = wallet.MvsMainNet
	}
	if o.Count == nil {
		count := domain.DefaultAddressCount
		o.Count = &count
	}
	if len(o.BasePath) <= 0 {
		o.BasePath = wallet.DefaultBaseDerivationPath
	}
	return o
}

// DeriveAddressOpts is the struct given to DeriveAddress.
type DeriveAddressOpts struct {
	Name       string
	Passphrase string
	Network    *chaincfg.Params
	Path       string
}

type accountService struct {
	store           ports.KVStore
	accountStore    *AccountStore
	walletStore     ports.WalletStore
	multisigService ports.MultisigService
	pluginService   ports.PluginService
}

// NewAccountService returns a new AccountService.
func NewAccountService(
	store ports.KVStore,
	accountStore *AccountStore,
	walletStore ports.WalletStore,
	multisigService ports.MultisigService,
	pluginService ports.PluginService,
) AccountService {
	return newAccountService(
		store, accountStore, walletStore, multisigService, pluginService,
	)
}

func newAccountService(
	store ports.KVStore,
	accountStore *AccountStore,
	walletStore ports.WalletStore,
	multisigService ports.MultisigService,
	pluginService ports.PluginService,
) *accountService {
	return &accountService{
		store:           store,
		accountStore:    accountStore,
		walletStore:     walletStore,
		multisigService: multisigService,
		pluginService:   pluginService,
	}
}

func (s *accountService) ImportEncryptedMnemonic(
	ctx context.Context, opts ImportOpts,
) (string, error) {
	opts = opts.withDefaults()

	mnemonic, err := wallet.Decrypt(wallet.DecryptOpts{
		CypherText: opts.EncryptedMnemonic,
		Passphrase: opts.Passphrase,
	})
	if err != nil {
		log.WithError(err).Warn("failed to decrypt mnemonic")
		return "", ErrDecryptWallet
	}

	// Reject a bad template before spending time in derivation.
	if err := wallet.ValidateDerivationPathTemplate(opts.BasePath); err != nil {
		log.WithError(err).Warn("failed to import account")
		return "", err
	}

	if *opts.Count < 0 {
		log.WithError(wallet.ErrInvalidAddressCount).Warn("failed to import account")
		return "", fmt.Errorf("%w: %w", ErrImportAccount, wallet.ErrInvalidAddressCount)
	}

	name := opts.Name
	if len(name) <= 0 {
		count, err := s.accountStore.CountAccounts(ctx)
		if err != nil {
			log.WithError(err).Warn("failed to count accounts")
			return "", ErrImportAccount
		}
		name = fmt.Sprintf("%s%d", defaultAccountNamePrefix, count+1)
	}

	account, err := domain.NewAccount(domain.NewAccountOpts{
		Name:              name,
		Mnemonic:          mnemonic,
		EncryptedMnemonic: opts.EncryptedMnemonic,
		Network:           opts.Network,
		Count:             *opts.Count,
		BasePath:          opts.BasePath,
	})
	if err != nil {
		log.WithError(err).Warn("failed to import account")
		if isImportError(err) {
			return "", err
		}
		return "", fmt.Errorf("%w: %s", ErrImportAccount, err)
	}

	id, err := s.accountStore.Insert(ctx, *account)
	if err != nil {
		log.WithError(err).Warn("failed to store imported account")
		return "", ErrImportAccount
	}

	log.Debugf("imported account %s with %d addresses", name, *opts.Count)
	return id, nil
}

func (s *accountService) SaveSessionAccount(
	ctx context.Context, passphrase string,
) error {
	var (
		seed, walletData             json.RawMessage
		multisigAddresses, multisigs []json.RawMessage
		plugins                      []json.RawMessage
	)

	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		seed, err = s.walletStore.GetSeed(gctx)
		return
	})
	eg.Go(func() (err error) {
		walletData, err = s.walletStore.GetWallet(gctx)
		return
	})
	eg.Go(func() (err error) {
		multisigAddresses, err = s.multisigService.GetMultisigAddresses(gctx)
		return
	})
	eg.Go(func() (err error) {
		multisigs, err = s.multisigService.GetMultisigInfo(gctx)
		return
	})
	eg.Go(func() (err error) {
		plugins, err = s.pluginService.GetPlugins(gctx)
		return
	})
	if err := eg.Wait(); err != nil {
		log.WithError(err).Warn("failed to collect session data")
		return ErrSaveSession
	}

	info := domain.NewSessionAccountInfo(
		seed, walletData, multisigAddresses, multisigs, plugins,
	)
	content, err := wallet.EncryptJSON(info, passphrase)
	if err != nil {
		log.WithError(err).Warn("failed to encrypt session")
		return ErrSaveSession
	}

	if err := s.store.Set(ctx, ports.AccountInfoKey, content); err != nil {
		log.WithError(err).Warn("failed to store session")
		return ErrSaveSession
	}
	return nil
}

func (s *accountService) SaveAccount(ctx context.Context, name string) error {
	if len(name) <= 0 {
		log.WithError(domain.ErrNullAccountName).Warn("failed to save account")
		return ErrSaveAccount
	}

	content, found, err := s.getSessionAccountInfo(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to read session")
		return ErrSaveAccount
	}
	if !found {
		log.Warn("failed to save account: no session found")
		return ErrSaveAccount
	}

	record := domain.NewSavedAccountRecord(name, content)
	if err := s.accountStore.Upsert(ctx, record); err != nil {
		log.WithError(err).Warn("failed to save account")
		return ErrSaveAccount
	}
	return nil
}

func (s *accountService) SetupAccount(
	ctx context.Context, name string, info domain.SessionAccountInfo,
) error {
	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return s.walletStore.SetWallet(gctx, info.Wallet)
	})
	eg.Go(func() error {
		return s.walletStore.SetSeed(gctx, info.Seed)
	})
	eg.Go(func() error {
		return s.store.Set(gctx, ports.AccountNameKey, name)
	})
	eg.Go(func() error {
		return s.multisigService.SetMultisigAddresses(gctx, info.MultisigAddresses)
	})
	eg.Go(func() error {
		return s.multisigService.SetMultisigInfo(gctx, info.Multisigs)
	})
	eg.Go(func() error {
		return s.pluginService.SetPlugins(gctx, info.Plugins)
	})
	if err := eg.Wait(); err != nil {
		log.WithError(err).Warnf("failed to setup account %s", name)
		return ErrSetupAccount
	}
	return nil
}

func (s *accountService) DeleteAccount(ctx context.Context, name string) error {
	deleted, err := s.accountStore.DeleteByName(ctx, name)
	if err != nil {
		log.WithError(err).Warnf("failed to delete account %s", name)
		return ErrDeleteAccount
	}
	if deleted {
		log.Debugf("deleted account %s", name)
	}
	return nil
}

func (s *accountService) DecryptAccount(
	_ context.Context, content, passphrase string,
) (*domain.SessionAccountInfo, error) {
	info := &domain.SessionAccountInfo{}
	if err := wallet.DecryptJSON(wallet.DecryptOpts{
		CypherText: content,
		Passphrase: passphrase,
	}, info); err != nil {
		log.WithError(err).Warn("failed to decrypt account")
		return nil, ErrDecryptWallet
	}
	return info, nil
}

func (s *accountService) Reset(ctx context.Context) error {
	for _, key := range []string{ports.AccountInfoKey, ports.AccountNameKey} {
		if err := s.store.Remove(ctx, key); err != nil {
			log.WithError(err).Warnf("failed to remove %s", key)
			return ErrStorage
		}
	}
	return nil
}

func (s *accountService) RenameAccount(
	ctx context.Context, oldName, newName string,
) error {
	if err := s.accountStore.Rename(ctx, oldName, newName); err != nil {
		log.WithError(err).Warnf("failed to rename account %s", oldName)
		if isAccountError(err) {
			return fmt.Errorf("%w: %w", ErrRenameAccount, err)
		}
		return ErrRenameAccount
	}

	currentName, found, err := s.getAccountName(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to read account name")
		return ErrRenameAccount
	}
	if found && currentName == oldName {
		if err := s.store.Set(ctx, ports.AccountNameKey, newName); err != nil {
			log.WithError(err).Warn("failed to update account name")
			return ErrRenameAccount
		}
	}
	return nil
}

func (s *accountService) SwitchAccount(
	ctx context.Context, name, passphrase string,
) error {
	saved, err := s.accountStore.ListSaved(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to read saved accounts")
		return ErrSwitchAccount
	}

	i := saved.IndexByName(name)
	if i < 0 {
		log.WithError(domain.ErrAccountNotFound).Warnf(
			"failed to switch to account %s", name,
		)
		return fmt.Errorf("%w: %w", ErrSwitchAccount, domain.ErrAccountNotFound)
	}
	record := saved[i]

	info, err := s.DecryptAccount(ctx, record.Content, passphrase)
	if err != nil {
		return err
	}

	if err := s.SetupAccount(ctx, record.Name, *info); err != nil {
		return err
	}

	if err := s.store.Set(ctx, ports.AccountInfoKey, record.Content); err != nil {
		log.WithError(err).Warn("failed to store session")
		return ErrSwitchAccount
	}

	if err := s.accountStore.SetActive(ctx, record.Name); err != nil {
		if !errors.Is(err, domain.ErrAccountNotFound) {
			log.WithError(err).Warn("failed to update active account")
		}
	}
	return nil
}

func (s *accountService) GetSessionAccountInfo(
	ctx context.Context,
) (string, error) {
	content, _, err := s.getSessionAccountInfo(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to read session")
		return "", ErrStorage
	}
	return content, nil
}

func (s *accountService) GetAccountName(ctx context.Context) (string, error) {
	name, found, err := s.getAccountName(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to read account name")
		return "", ErrStorage
	}
	if !found || len(name) <= 0 {
		return DefaultAccountName, nil
	}
	return name, nil
}

func (s *accountService) SetAccountName(ctx context.Context, name string) error {
	if err := s.store.Set(ctx, ports.AccountNameKey, name); err != nil {
		log.WithError(err).Warn("failed to store account name")
		return ErrStorage
	}
	return nil
}

func (s *accountService) GetSavedAccounts(
	ctx context.Context,
) (domain.SavedAccounts, error) {
	saved, err := s.accountStore.ListSaved(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to read saved accounts")
		return nil, ErrStorage
	}
	return saved, nil
}

func (s *accountService) GetAccounts(
	ctx context.Context,
) ([]domain.Account, error) {
	accounts, err := s.accountStore.GetAccounts(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to read accounts")
		return nil, ErrStorage
	}
	return accounts, nil
}

func (s *accountService) DeriveAddress(
	ctx context.Context, opts DeriveAddressOpts,
) (*domain.Address, error) {
	if opts.Network == nil {
		opts.Network = wallet.MvsMainNet
	}

	account, err := s.accountStore.GetAccount(ctx, opts.Name)
	if err != nil {
		log.WithError(err).Warnf("failed to get account %s", opts.Name)
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrDeriveAddress, err)
		}
		return nil, ErrDeriveAddress
	}

	addr, err := account.AddressAtPath(opts.Passphrase, opts.Network, opts.Path)
	if err != nil {
		log.WithError(err).Warnf("failed to derive address for %s", opts.Name)
		switch {
		case errors.Is(err, wallet.ErrDecrypt):
			return nil, ErrDecryptWallet
		case isImportError(err):
			return nil, err
		default:
			return nil, ErrDeriveAddress
		}
	}
	return addr, nil
}

func (s *accountService) ActiveAccount(
	ctx context.Context,
) (<-chan domain.Account, func()) {
	return s.accountStore.ActiveAccount(ctx)
}

func (s *accountService) getSessionAccountInfo(
	ctx context.Context,
) (string, bool, error) {
	var content string
	found, err := s.store.Get(ctx, ports.AccountInfoKey, &content)
	return content, found, err
}

func (s *accountService) getAccountName(
	ctx context.Context,
) (string, bool, error) {
	var name string
	found, err := s.store.Get(ctx, ports.AccountNameKey, &name)
	return name, found, err
}

func isImportError(err error) bool {
	return errors.Is(err, wallet.ErrInvalidDerivationPath) ||
		errors.Is(err, wallet.ErrInvalidMnemonic)
}

func isAccountError(err error) bool {
	return errors.Is(err, domain.ErrAccountNotFound) ||
		errors.Is(err, domain.ErrAccountNameTaken) ||
		errors.Is(err, domain.ErrNullAccountName)
}
