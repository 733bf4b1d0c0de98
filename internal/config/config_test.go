package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENVIRONMENT", "LOG_LEVEL", "GOTRANS_ENGINE", "GOTRANS_FROM", "GOTRANS_TO",
		"GOTRANS_TIMEOUT", "GOTRANS_BING_URL", "GOTRANS_CIBA_URL", "GOTRANS_YOUDAO_URL",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "youdao", cfg.Engine)
	assert.Equal(t, "en", cfg.SourceLang)
	assert.Equal(t, "zh", cfg.TargetLang)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.BingURL)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOTRANS_ENGINE", "ciba")
	t.Setenv("GOTRANS_FROM", "auto")
	t.Setenv("GOTRANS_TIMEOUT", "0s")
	t.Setenv("GOTRANS_CIBA_URL", "http://127.0.0.1:9999/ajax.php")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "ciba", cfg.Engine)
	assert.Equal(t, "auto", cfg.SourceLang)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.Equal(t, "http://127.0.0.1:9999/ajax.php", cfg.CibaURL)
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "staging")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Environment")
}

func TestLoad_InvalidURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOTRANS_YOUDAO_URL", "not a url")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YoudaoURL")
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := Config{Environment: "local", Timeout: -time.Second}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOTRANS_TIMEOUT")
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GOTRANS_ENGINE=bing\nGOTRANS_TO=ja\n"), 0o600))
	t.Setenv("GOTRANS_TO", "fr")

	require.NoError(t, LoadEnvFile(path, true))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "bing", cfg.Engine)
	assert.Equal(t, "fr", cfg.TargetLang, "existing variables win over the file")
}

func TestLoadEnvFile_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.env")

	assert.NoError(t, LoadEnvFile(missing, false))
	assert.Error(t, LoadEnvFile(missing, true))
	assert.NoError(t, LoadEnvFile("", true))
}
