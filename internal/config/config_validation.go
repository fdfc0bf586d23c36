// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; the merged config is validated again once it
// has been narrowed to a [ClientConfig] view.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	// A zero backup interval simply disables the worker; a non-zero interval
	// requires a destination directory.
	if cfg.Workers.BackupInterval != 0 && cfg.Storage.BackupDir == "" {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
