package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database file path (SQLite DSN)
//	-backup-dir directory for backup snapshots
//	-backup-interval auto-backup period (e.g., "1h", "30m")
//	-c/-config json file path with configs
//	-token-sign-key session token signing key
//	-token-issuer session token issuer name
//	-token-duration session token duration (e.g., "720h")
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var backupDir string
	var backupInterval time.Duration
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration

	flag.StringVar(&databaseDSN, "d", "", "Catalog database file path")
	flag.StringVar(&backupDir, "backup-dir", "", "Backup snapshot directory")
	flag.DurationVar(&backupInterval, "backup-interval", 0, "Auto-backup period (e.g., 1h, 30m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Session token duration (e.g., 720h)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Backups: Backups{
				Dir: backupDir,
			},
		},
		Workers: Workers{
			BackupInterval: backupInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
