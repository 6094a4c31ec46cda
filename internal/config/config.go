package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all tgmoney client configuration.
type Config struct {
	API        APIConfig        `toml:"api"`
	Session    SessionConfig    `toml:"session"`
	Appearance AppearanceConfig `toml:"appearance"`
	Stats      StatsConfig      `toml:"stats"`
}

// APIConfig holds remote service settings.
type APIConfig struct {
	BaseURL string `toml:"base_url"`
}

// SessionConfig holds the host credential.
type SessionConfig struct {
	// InitData is the signed session token issued by the host messenger.
	// It is opaque to the client; the service verifies it per request.
	InitData string `toml:"init_data,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// StatsConfig holds stats panel defaults.
type StatsConfig struct {
	DefaultPeriod string `toml:"default_period"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Stats: StatsConfig{
			DefaultPeriod: "week",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "tgmoney")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tgmoney")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
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
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// GetInitData returns the credential from env var or config, in that order.
func GetInitData(cfg Config) string {
	if v := os.Getenv("TGMONEY_INIT_DATA"); v != "" {
		return v
	}
	return cfg.Session.InitData
}

// GetBaseURL returns the service URL from env var or config, in that order.
func GetBaseURL(cfg Config) string {
	if v := os.Getenv("TGMONEY_API_BASE"); v != "" {
		return v
	}
	return cfg.API.BaseURL
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
