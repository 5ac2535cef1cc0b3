package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketfin/pocket/internal/config"
)

// pointConfigHome redirects XDG_CONFIG_HOME to a temp dir for the test.
func pointConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	pointConfigHome(t)

	cfg, err := config.Load()
	require.Nil(t, err)

	assert.Equal(t, 30, cfg.General.DefaultDays)
	assert.Equal(t, "$", cfg.General.CurrencySymbol)
	assert.Equal(t, config.BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "flexoki-dark", cfg.Appearance.Theme)
}

func TestSaveThenLoad(t *testing.T) {
	pointConfigHome(t)

	cfg := config.Default()
	cfg.General.DefaultDays = 90
	cfg.General.CurrencySymbol = "€"
	cfg.Storage.Backend = config.BackendJSON
	require.Nil(t, config.Save(cfg))
	assert.True(t, config.Exists())

	loaded, err := config.Load()
	require.Nil(t, err)
	assert.Equal(t, 90, loaded.General.DefaultDays)
	assert.Equal(t, "€", loaded.General.CurrencySymbol)
	assert.Equal(t, config.BackendJSON, loaded.Storage.Backend)
}

func TestLoad_MalformedFile(t *testing.T) {
	pointConfigHome(t)

	require.Nil(t, os.MkdirAll(config.Dir(), 0o755))
	require.Nil(t, os.WriteFile(config.Path(), []byte("not [valid toml"), 0o600))

	_, err := config.Load()
	assert.NotNil(t, err)
}

func TestEffectiveDataDir_Override(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.DataDir = "/tmp/pocket-data"

	assert.Equal(t, "/tmp/pocket-data", cfg.EffectiveDataDir())
	assert.Equal(t, filepath.Join("/tmp/pocket-data", "pocket.db"), cfg.JournalPath())
	assert.Equal(t, filepath.Join("/tmp/pocket-data", "budgetData.json"), cfg.SnapshotPath())
}
