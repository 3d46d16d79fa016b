package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "frankfurter", cfg.ExchangeRateProvider.Name)
	assert.Equal(t, "https://api.frankfurter.dev/v1", cfg.ExchangeRateProvider.ApiUrl)
	assert.Equal(t, 10*time.Second, cfg.ExchangeRateProvider.HTTPTimeout)
	assert.Equal(t, "ILS", cfg.Converter.Base)
	assert.Equal(t, "CAD", cfg.Converter.Quote)
	assert.InDelta(t, 0.4366, cfg.Converter.FallbackRate, 1e-12)
	assert.Equal(t, "[priceconv]", cfg.Log.Prefix)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("EXCHANGE_RATE_PROVIDER_NAME", "stub")
	t.Setenv("EXCHANGE_RATE_PROVIDER_STUB_RATE", "0.5")
	t.Setenv("CONVERTER_FALLBACK_RATE", "0.42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "stub", cfg.ExchangeRateProvider.Name)
	assert.InDelta(t, 0.5, cfg.ExchangeRateProvider.StubRate, 1e-12)
	assert.InDelta(t, 0.42, cfg.Converter.FallbackRate, 1e-12)
}

func TestLoad_FromEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("LOG_PREFIX", "") // registered for cleanup; godotenv does not override set vars
	require.NoError(t, os.Unsetenv("LOG_PREFIX"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte("LOG_PREFIX=[test]\n"), 0o600))

	cfg, err := Load(".env.missing", ".env.test")
	require.NoError(t, err)
	assert.Equal(t, "[test]", cfg.Log.Prefix)
}

func TestLoad_InvalidFallbackRate(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONVERTER_FALLBACK_RATE", "0")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONVERTER_FALLBACK_RATE")
}

func TestLoad_UnknownProvider(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("EXCHANGE_RATE_PROVIDER_NAME", "ecb")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frankfurter, stub")
}

func TestFindEnvFile_SearchesParents(t *testing.T) {
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("X=1\n"), 0o600))
	t.Chdir(nested)

	found, err := FindEnvFile("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".env"), found)

	_, err = FindEnvFile(".does-not-exist")
	require.ErrorIs(t, err, os.ErrNotExist)
}
