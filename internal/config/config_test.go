package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/games")
	t.Setenv("STORAGE_BUCKET", "mem://")
	t.Setenv("HLTB_SEARCH_URL", "https://hltb.example/api/search")
	t.Setenv("API_KEY", "secret")
}

func TestLoad_FromEnvironmentWithDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/games", cfg.DatabaseURL)
	assert.Equal(t, "mem://", cfg.StorageBucket)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "https://store.steampowered.com", cfg.SteamStoreURL)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestLoad_ReturnsIndependentConfigs(t *testing.T) {
	setRequiredEnv(t)
	first, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	t.Setenv("API_KEY", "rotated")
	second, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, "secret", first.APIKey)
	assert.Equal(t, "rotated", second.APIKey)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	content := "DATABASE_URL=postgres://file/games\nSTORAGE_BUCKET=file:///tmp/covers\nHLTB_SEARCH_URL=https://hltb.example\nAPI_KEY=from-file\nHTTP_TIMEOUT=3s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	cfg, err := load(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, "postgres://file/games", cfg.DatabaseURL)
	assert.Equal(t, "from-file", cfg.APIKey)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := "DATABASE_URL=postgres://file/games\nSTORAGE_BUCKET=mem://\nHLTB_SEARCH_URL=https://hltb.example\nAPI_KEY=from-file\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))
	t.Setenv("API_KEY", "from-env")

	cfg, err := load(viper.New(), dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.APIKey)
}

func TestLoad_MissingRequiredFailsFast(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("STORAGE_BUCKET", "mem://")
	t.Setenv("HLTB_SEARCH_URL", "")
	t.Setenv("API_KEY", "secret")

	cfg, err := load(viper.New(), t.TempDir())
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DATABASE_URL, HLTB_SEARCH_URL")
}

func TestValidate_RejectsNonPositiveTimeout(t *testing.T) {
	cfg := Config{
		DatabaseURL:   "postgres://x",
		StorageBucket: "mem://",
		HLTBSearchURL: "https://hltb.example",
		APIKey:        "k",
	}
	assert.Error(t, cfg.Validate())

	cfg.HTTPTimeout = time.Second
	assert.NoError(t, cfg.Validate())
}
