package config

import (
	"github.com/ayawo/ega.banking-console/pkg/lib-core-golang/config"
	"github.com/ayawo/ega.banking-console/pkg/version"
)

var appEnv = config.NewAppEnv(version.AppName)
var configBuilder = config.NewBuilder(appEnv)

// Do not change vars below at runtime
var (
	LogLevel = configBuilder.NewParam("log/logLevel")

	BankingAPI = configBuilder.NewParam("banking/api")

	StorageDriver = configBuilder.NewParam("storage/driver")
	StorageDSN    = configBuilder.NewParam("storage/data-source-name")
)

// Log represents logger specific options
type Log struct {
	Level config.StringVal
}

// Banking represents banking service settings
type Banking struct {
	API config.StringVal
}

// Storage represents storage settings
type Storage struct {
	Driver config.StringVal
	DSN    config.StringVal
}

// AppConfig is a toplevel config structure
type AppConfig struct {
	Log     Log
	Banking Banking
	Storage Storage
}

// Load will load and initialize config
func Load() config.ServiceConfig {
	cfg, err := configBuilder.LoadConfig()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadAppConfig will load and initialize app config structure
func LoadAppConfig() *AppConfig {
	cfg := Load()

	appCfg := AppConfig{
		Log: Log{
			Level: cfg.StringParam(LogLevel),
		},
		Banking: Banking{
			API: cfg.StringParam(BankingAPI),
		},
		Storage: Storage{
			Driver: cfg.StringParam(StorageDriver),
			DSN:    cfg.StringParam(StorageDSN),
		},
	}

	return &appCfg
}
