// Package config loads and saves pocket's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// Backend names for the storage section.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

// Config holds all pocket configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Storage    StorageConfig    `toml:"storage"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultDays    int    `toml:"default_days"`
	CurrencySymbol string `toml:"currency_symbol"`
}

// StorageConfig selects and locates the persistence backend.
type StorageConfig struct {
	Backend string `toml:"backend"`
	DataDir string `toml:"data_dir,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		General: GeneralConfig{
			DefaultDays:    30,
			CurrencySymbol: "$",
		},
		Storage: StorageConfig{
			Backend: BackendSQLite,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the config directory.
func Dir() string {
	return filepath.Join(xdg.ConfigHome, "pocket")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// EffectiveDataDir returns the directory holding persisted state,
// honoring the config override when set.
func (c Config) EffectiveDataDir() string {
	if c.Storage.DataDir != "" {
		return c.Storage.DataDir
	}
	return filepath.Join(xdg.DataHome, "pocket")
}

// JournalPath is the SQLite journal location inside the data dir.
func (c Config) JournalPath() string {
	return filepath.Join(c.EffectiveDataDir(), "pocket.db")
}

// SnapshotPath is the JSON snapshot location inside the data dir.
func (c Config) SnapshotPath() string {
	return filepath.Join(c.EffectiveDataDir(), "budgetData.json")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
