package main

import (
	"github.com/tdex-network/mvs-vault/internal/config"
	"github.com/tdex-network/mvs-vault/internal/core/application"
	"github.com/tdex-network/mvs-vault/internal/core/domain"
	"github.com/tdex-network/mvs-vault/internal/core/ports"
	"github.com/tdex-network/mvs-vault/internal/infrastructure/collaborator"
	"github.com/tdex-network/mvs-vault/internal/infrastructure/pubsub"
	dbbadger "github.com/tdex-network/mvs-vault/internal/infrastructure/storage/db/badger"
	"github.com/tdex-network/mvs-vault/internal/infrastructure/storage/db/inmemory"
	"github.com/tdex-network/mvs-vault/pkg/bridge"
)

func getAccountService() (application.AccountService, func(), error) {
	var (
		store   ports.KVStore
		repo    domain.AccountRepository
		closeDb func()
	)

	switch config.GetString(config.DBTypeKey) {
	case config.DBInmemory:
		db := inmemory.NewDbManager()
		store = inmemory.NewKVStoreImpl(db)
		repo = inmemory.NewAccountRepositoryImpl(db)
		closeDb = func() {}
	default:
		db, err := dbbadger.NewDbManager(config.GetDbDir(), dbbadger.NewLogger())
		if err != nil {
			return nil, nil, err
		}
		store = dbbadger.NewKVStoreImpl(db.KVStore)
		repo = dbbadger.NewAccountRepositoryImpl(db.AccountStore)
		closeDb = func() { _ = db.Close() }
	}

	feed := pubsub.NewAccountFeed()
	accountStore := application.NewAccountStore(store, repo, feed)
	svc := application.NewAccountService(
		store,
		accountStore,
		collaborator.NewWalletStore(store),
		collaborator.NewMultisigService(store),
		collaborator.NewPluginService(store),
	)

	cleanup := func() {
		feed.Close()
		closeDb()
	}
	return svc, cleanup, nil
}

func getBridgeClient() (*bridge.Client, error) {
	return bridge.NewClient(bridge.Opts{
		URL:               config.GetString(config.BridgeURLKey),
		RequestsPerSecond: config.GetInt(config.BridgeRateLimitKey),
	})
}
