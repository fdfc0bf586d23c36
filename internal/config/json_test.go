package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON may be strings like "30s" or raw nanosecond numbers.
	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"token_duration": "720h"
		},
		"storage": {
			"db": { "dsn": "/var/lib/vinyl/catalog.db" },
			"backups": { "dir": "/var/backups/vinyl" }
		},
		"workers": {
			"backup_interval": "30m"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 720*time.Hour, cfg.App.TokenDuration)

	assert.Equal(t, "/var/lib/vinyl/catalog.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/backups/vinyl", cfg.Storage.Backups.Dir)
	assert.Equal(t, 30*time.Minute, cfg.Workers.BackupInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedBody(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"app": {`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON_NumberAndString(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"1h"`)))
	assert.Equal(t, time.Hour, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`60000000000`)))
	assert.Equal(t, time.Minute, time.Duration(d))

	require.Error(t, d.UnmarshalJSON([]byte(`"bogus"`)))
}
