package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/tdex-network/mvs-vault/pkg/bridge"
	"github.com/tdex-network/mvs-vault/pkg/wallet"
)

const (
	// DatadirKey is the local data directory to store the internal state of the vault
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// NetworkKey is the network of the imported accounts, either mvs or mvs-testnet
	NetworkKey = "NETWORK"
	// DBTypeKey is used to switch database type between those supported
	DBTypeKey = "DB_TYPE"
	// AddressCountKey is the number of addresses derived when importing an account
	AddressCountKey = "ADDRESS_COUNT"
	// BaseDerivationPathKey is the path template used to derive addresses, ie. m/0
	BaseDerivationPathKey = "BASE_DERIVATION_PATH"
	// BridgeURLKey is the base url of the ETP bridge api
	BridgeURLKey = "BRIDGE_URL"
	// BridgeRateLimitKey is the max number of requests per second sent to the bridge
	BridgeRateLimitKey = "BRIDGE_RATE_LIMIT"

	// DBBadger ...
	DBBadger = "badger"
	// DBInmemory ...
	DBInmemory = "inmemory"

	DbLocation = "db"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("mvs-vault", false)

func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("MVSVAULT")
	vip.AutomaticEnv()

	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(LogLevelKey, int(log.InfoLevel))
	vip.SetDefault(NetworkKey, wallet.MvsMainNetName)
	vip.SetDefault(DBTypeKey, DBBadger)
	vip.SetDefault(AddressCountKey, 10)
	vip.SetDefault(BaseDerivationPathKey, wallet.DefaultBaseDerivationPath)
	vip.SetDefault(BridgeURLKey, bridge.DefaultURL)
	vip.SetDefault(BridgeRateLimitKey, bridge.DefaultRequestsPerSecond)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if GetString(DBTypeKey) == DBBadger {
		if err := initDatadir(); err != nil {
			return fmt.Errorf("error while creating datadir: %s", err)
		}
	}

	log.SetLevel(log.Level(GetInt(LogLevelKey)))
	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

func GetDbDir() string {
	return filepath.Join(GetDatadir(), DbLocation)
}

// GetNetwork returns the chain params of the configured network.
func GetNetwork() *chaincfg.Params {
	net, _ := wallet.NetworkByName(GetString(NetworkKey))
	return net
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	level := GetInt(LogLevelKey)
	if level < int(log.PanicLevel) || level > int(log.TraceLevel) {
		return fmt.Errorf("%s must be in range [%d, %d]",
			LogLevelKey, log.PanicLevel, log.TraceLevel)
	}

	if _, err := wallet.NetworkByName(GetString(NetworkKey)); err != nil {
		return err
	}

	dbType := GetString(DBTypeKey)
	if dbType != DBBadger && dbType != DBInmemory {
		return fmt.Errorf(
			"%s must be either %s or %s", DBTypeKey, DBBadger, DBInmemory,
		)
	}

	if GetInt(AddressCountKey) < 0 {
		return fmt.Errorf("%s must not be negative", AddressCountKey)
	}

	if err := wallet.ValidateDerivationPathTemplate(
		GetString(BaseDerivationPathKey),
	); err != nil {
		return err
	}

	if GetInt(BridgeRateLimitKey) <= 0 {
		return fmt.Errorf("%s must be greater than zero", BridgeRateLimitKey)
	}

	return nil
}

func initDatadir() error {
	return makeDirectoryIfNotExists(GetDbDir())
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
