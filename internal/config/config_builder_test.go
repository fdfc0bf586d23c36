package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("source failed")

	cfg, err := b.build()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "source failed")
}

// TestBuild_MergePriority verifies that earlier sources win for fields that
// are already non-zero (mergo keeps the first non-zero value).
func TestBuild_MergePriority(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenIssuer: "from-env"}},
		&StructuredConfig{
			App:     App{TokenIssuer: "from-flags", TokenDuration: time.Hour},
			Storage: Storage{DB: DB{DSN: "catalog.db"}},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "catalog.db", cfg.Storage.DB.DSN)
}

// TestClientConfigValidate covers the client view invariants.
func TestClientConfigValidate(t *testing.T) {
	valid := &ClientConfig{
		App: ClientApp{
			TokenSignKey:  "secret",
			TokenIssuer:   "vinyl-app",
			TokenDuration: time.Hour,
		},
		Storage: ClientStorage{DB: ClientDB{DSN: "catalog.db"}},
	}
	assert.NoError(t, valid.validate())

	noDSN := *valid
	noDSN.Storage.DB.DSN = ""
	assert.ErrorIs(t, noDSN.validate(), ErrInvalidStorageConfigs)

	noKey := *valid
	noKey.App.TokenSignKey = ""
	assert.ErrorIs(t, noKey.validate(), ErrInvalidAppConfigs)

	badWorkers := *valid
	badWorkers.Workers.BackupInterval = time.Minute
	assert.ErrorIs(t, badWorkers.validate(), ErrInvalidWorkerConfigs)

	workersOK := badWorkers
	workersOK.Storage.BackupDir = t.TempDir()
	assert.NoError(t, workersOK.validate())
}
