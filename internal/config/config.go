// Package config provides configuration management for agentdeck using Viper.
package config

import (
	"path/filepath"

	"github.com/spf13/viper"

	"agentdeck/internal/errors"
	"agentdeck/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = "agentdeck"

// Config is the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// StoreDir overrides the default entity store location
	// (<XDG data home>/agentdeck).
	StoreDir string `mapstructure:"store_dir" yaml:"store_dir,omitempty"`

	// DefaultAgents are the agents sync targets when a project does not
	// list any.
	DefaultAgents []string `mapstructure:"default_agents" yaml:"default_agents"`

	// Theme names the active color palette from the theme registry.
	Theme string `mapstructure:"theme" yaml:"theme"`

	// Analytics controls the usage-event client.
	Analytics AnalyticsConfig `mapstructure:"analytics" yaml:"analytics"`

	// Marketplace points search at a remote catalog endpoint. Empty means
	// bundled catalogs only.
	Marketplace MarketplaceConfig `mapstructure:"marketplace" yaml:"marketplace"`
}

// AnalyticsConfig holds the user-controlled analytics consent state.
// The API key is compiled in, never configured here.
type AnalyticsConfig struct {
	// Enabled is the user consent flag. Off by default.
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`

	// UserID is a random anonymous id generated on first opt-in.
	UserID string `mapstructure:"user_id" yaml:"user_id,omitempty"`
}

// MarketplaceConfig configures remote catalog access.
type MarketplaceConfig struct {
	// Endpoint is the base URL of a remote catalog search service.
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint,omitempty"`
}

// EffectiveStoreDir returns the configured store dir, or the XDG default.
func (c *Config) EffectiveStoreDir() string {
	if c.StoreDir != "" {
		return c.StoreDir
	}
	return paths.StoreDir()
}

// Init initializes Viper with defaults. Call once at startup before
// accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths in order of precedence.
	viper.AddConfigPath(".")
	viper.AddConfigPath(filepath.Join(paths.ConfigHome(), AppName))

	viper.SetEnvPrefix("AGENTDECK")
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("default_agents", paths.Agents())
	viper.SetDefault("theme", "dark")
}

// Load reads the configuration file. With a non-empty path it reads that
// exact file; otherwise it searches the default locations and falls back to
// defaults when nothing is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// A path the user named must exist; implicit loads may not.
			if path != "" {
				return nil, errors.Wrapf(err, "config file not found at %s", path)
			}
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}
	return &cfg, nil
}
