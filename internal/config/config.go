// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// vinyl-app application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as session token parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backends: the local
	// catalog database and the backup output directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the local catalog database connection settings.
	DB DB `envPrefix:"DB_"`

	// Backups holds settings for where backup snapshots are written.
	Backups Backups `envPrefix:"BACKUPS_"`
}

// App holds application-level configuration values that control the
// remember-me session token lifecycle.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session token.
	// Tokens whose issuer does not match this value are rejected on restore.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a remembered session remains valid
	// after login (e.g. "720h", "168h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// DB holds connection settings for the local catalog database.
type DB struct {
	// DSN is the SQLite file path (or ":memory:") used to open the local
	// catalog database.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Backups holds file-system settings for backup snapshots.
type Backups struct {
	// Dir is the directory the auto-backup worker writes timestamped
	// backup JSON files into.
	// Env: STORAGE_BACKUPS_DIR
	Dir string `env:"DIR"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// BackupInterval defines how often the auto-backup worker writes a
	// snapshot of the signed-in user's data. Zero disables the worker.
	// Env: WORKERS_BACKUP_INTERVAL
	BackupInterval time.Duration `env:"BACKUP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
