package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the user-level settings. Values come from
// ~/.cadence/config.toml when present, overridden by CADENCE_* environment
// variables; everything has a sensible default so a fresh install needs no
// config file at all.
type Config struct {
	DBPath string `mapstructure:"db_path"`
	UserID string `mapstructure:"user_id"`
	Color  bool   `mapstructure:"color"`
}

// Load reads configuration from the given directory (defaults to
// ~/.cadence when empty).
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("finding home directory: %w", err)
		}
		dir = filepath.Join(home, ".cadence")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	v.SetDefault("db_path", filepath.Join(dir, "cadence.db"))
	v.SetDefault("user_id", "default")
	v.SetDefault("color", true)

	v.SetEnvPrefix("CADENCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}
