package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Flone-dnb/system-wide-key-state/keycode"
)

type Config struct {
	Log     LogConfig     `toml:"log"`
	Query   QueryConfig   `toml:"query"`
	Web     WebConfig     `toml:"web"`
	Storage StorageConfig `toml:"storage"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type QueryConfig struct {
	// Keys queried when no key is named on the command line
	Keys []string `toml:"keys"`
}

type WebConfig struct {
	Enabled bool `toml:"enabled"`
	Port    int  `toml:"port"`
}

type StorageConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Default configuration
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level: "info",
		},
		Query: QueryConfig{
			Keys: []string{"Shift", "Ctrl", "Alt", "Esc"},
		},
		Web: WebConfig{
			Enabled: false,
			Port:    7357,
		},
		Storage: StorageConfig{
			Enabled: false,
			Dir:     "",
		},
	}
}

// Dir returns the configuration directory, creating it if needed
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}

	dir := filepath.Join(base, "keystate")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	return dir, nil
}

// Path returns the path to the default configuration file
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration from path. An empty path means the default
// location. If the file doesn't exist, it is created with default values.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to a TOML file
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Validate checks key names, port and log level
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}

	if _, err := c.QueryKeys(); err != nil {
		return err
	}

	if c.Web.Port < 1 || c.Web.Port > 65535 {
		return fmt.Errorf("web port must be between 1 and 65535, got: %d", c.Web.Port)
	}
	return nil
}

// QueryKeys resolves the configured key names
func (c *Config) QueryKeys() ([]keycode.KeyCode, error) {
	keys := make([]keycode.KeyCode, 0, len(c.Query.Keys))
	for _, name := range c.Query.Keys {
		k, err := keycode.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("query keys: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// StorageDir returns the database directory, falling back to the config directory
func (c *Config) StorageDir() (string, error) {
	if c.Storage.Dir != "" {
		if err := os.MkdirAll(c.Storage.Dir, 0755); err != nil {
			return "", fmt.Errorf("failed to create storage directory: %w", err)
		}
		return c.Storage.Dir, nil
	}
	return Dir()
}

// ParseLevel converts a level name to a slog.Level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
}
