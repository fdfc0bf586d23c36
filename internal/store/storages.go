package store

import (
	"context"
	"fmt"

	"github.com/simonxoxoo/vinyl-app/internal/config"
	"github.com/simonxoxoo/vinyl-app/internal/logger"
)

// Storages groups all storage-layer values into a single value that can be
// passed around the service layer.
type Storages struct {
	// KV is the raw flat key-value namespace backing the catalog.
	KV KVRepository

	// Catalog is the typed façade over the users/collections/session entries.
	Catalog CatalogStore
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to a fresh
//     [KVRepository] and [CatalogStore].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	kv := NewKVRepository(db, logger)

	return &Storages{
		KV:      kv,
		Catalog: NewCatalogStore(kv, logger),
	}, nil
}
