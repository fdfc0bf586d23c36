package config

import (
	"fmt"
	"time"
)

// ClientApp holds application settings derived from the shared structured
// config that the catalog runtime needs.
type ClientApp struct {
	// TokenSignKey is the key used to sign and verify session tokens.
	TokenSignKey string
	// TokenIssuer is the issuer claim stamped on session tokens.
	TokenIssuer string
	// TokenDuration is how long a remembered session stays valid.
	TokenDuration time.Duration
}

// ClientDB contains local database connection settings for the catalog.
type ClientDB struct {
	// DSN is the SQLite file path used to open the catalog database.
	DSN string
}

// ClientStorage groups catalog storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// BackupDir is the directory backup snapshots are written into.
	BackupDir string
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// BackupInterval defines how often the auto-backup worker runs.
	// Zero disables the worker.
	BackupInterval time.Duration
}

// ClientConfig is the top-level catalog runtime configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains session token settings.
	App ClientApp
	// Storage contains catalog storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the catalog runtime config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the catalog runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			BackupDir: cfg.Storage.Backups.Dir,
		},
		Workers: ClientWorkers{
			BackupInterval: cfg.Workers.BackupInterval,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	return clientCfg, nil
}
