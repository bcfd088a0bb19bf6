package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Store StoreConfig
	Log   LogConfig
	UI    UIConfig
	CRUD  CRUDConfig `mapstructure:"crud"`
}

// StoreConfig holds snapshot persistence settings. An empty Path keeps the
// collections in memory only.
type StoreConfig struct {
	Path     string
	Autosave bool
}

type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	PageSize int    `mapstructure:"page_size"`
	UserName string `mapstructure:"user_name"`
}

// CRUDConfig tunes the entity controllers.
type CRUDConfig struct {
	FirstKey int `mapstructure:"first_key"`
	Strict   bool
}

// Dir is the directory holding config.toml and keybindings.toml.
func Dir() string {
	if p := os.Getenv("GESTION_CONFIG"); p != "" {
		return filepath.Dir(p)
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "gestion")
}

func path() string {
	if p := os.Getenv("GESTION_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(Dir(), "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix GESTION_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("store.path", "")
	v.SetDefault("store.autosave", true)
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "state", "gestion", "gestion.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.page_size", 10)
	v.SetDefault("ui.user_name", os.Getenv("USER"))
	v.SetDefault("crud.first_key", 1)
	v.SetDefault("crud.strict", false)

	v.SetConfigType("toml")
	v.SetConfigFile(path())

	v.SetEnvPrefix("GESTION")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing file is fine; a broken one is not
	if _, err := os.Stat(path()); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.PageSize <= 0 {
		c.UI.PageSize = 10
	}
	if c.CRUD.FirstKey < 1 {
		return Config{}, fmt.Errorf("crud.first_key must be at least 1, got %d", c.CRUD.FirstKey)
	}
	return c, nil
}

// Save writes cfg to disk, creating the config directory if needed.
func Save(cfg Config) error {
	p := path()
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("store.path", cfg.Store.Path)
	v.Set("store.autosave", cfg.Store.Autosave)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	v.Set("ui.page_size", cfg.UI.PageSize)
	v.Set("ui.user_name", cfg.UI.UserName)
	v.Set("crud.first_key", cfg.CRUD.FirstKey)
	v.Set("crud.strict", cfg.CRUD.Strict)

	if err := v.WriteConfigAs(p); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
