// Package config provides configuration types, defaults and viper loading for
// the namegen commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. NAMEGEN_CATALOG_SOURCE.
const EnvPrefix = "NAMEGEN"

// Config holds all configuration options for namegen.
type Config struct {
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Examples  ExamplesConfig  `mapstructure:"examples"`
	Render    RenderConfig    `mapstructure:"render"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	Log       LogConfig       `mapstructure:"log"`
}

// CatalogConfig controls where the catalog is loaded from.
type CatalogConfig struct {
	Source  string        `mapstructure:"source"`  // file path, fs:<path>, http(s) URL or builtin:fallback
	Timeout time.Duration `mapstructure:"timeout"` // HTTP request timeout
}

// ExamplesConfig controls example generation.
type ExamplesConfig struct {
	Count int `mapstructure:"count"`
}

// RenderConfig controls non-interactive output.
type RenderConfig struct {
	Format string `mapstructure:"format"` // text, json, html or pretty
}

// ClipboardConfig toggles clipboard integration.
type ClipboardConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LogConfig controls the zerolog logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Catalog: CatalogConfig{
			Source:  "templates.json",
			Timeout: 10 * time.Second,
		},
		Examples:  ExamplesConfig{Count: 3},
		Render:    RenderConfig{Format: "text"},
		Clipboard: ClipboardConfig{Enabled: true},
		Log:       LogConfig{Level: "warn", Pretty: true},
	}
}

// SetDefaults registers Defaults() on v.
func SetDefaults(v *viper.Viper) {
	defaults := Defaults()
	v.SetDefault("catalog.source", defaults.Catalog.Source)
	v.SetDefault("catalog.timeout", defaults.Catalog.Timeout)
	v.SetDefault("examples.count", defaults.Examples.Count)
	v.SetDefault("render.format", defaults.Render.Format)
	v.SetDefault("clipboard.enabled", defaults.Clipboard.Enabled)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.pretty", defaults.Log.Pretty)
}

// Load reads configuration into v and unmarshals it. When file is empty the
// lookup order is ./namegen.yaml then ~/.config/namegen/config.yaml; a missing
// file is not an error.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else if _, err := os.Stat("namegen.yaml"); err == nil {
		v.SetConfigFile("namegen.yaml")
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "namegen"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports configuration values that cannot be used.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Catalog.Source) == "" {
		return errors.New("config: catalog.source is required")
	}
	if c.Catalog.Timeout < 0 {
		return fmt.Errorf("config: catalog.timeout must not be negative, got %s", c.Catalog.Timeout)
	}
	if c.Examples.Count < 0 {
		return fmt.Errorf("config: examples.count must not be negative, got %d", c.Examples.Count)
	}
	return nil
}
