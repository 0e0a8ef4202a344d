// Package config loads panetop configuration from the global config file
// with sensible defaults for every key, so running without any config file
// is the normal case.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"panetop/internal/errors"
	"panetop/internal/logger"
)

const (
	// GlobalConfigDir is the directory for the config file, under $HOME.
	GlobalConfigDir = ".config/panetop"
	// ConfigFileName is the config file name.
	ConfigFileName = "config.yaml"
)

// Defaults for every configurable value.
const (
	DefaultInterval = 2 * time.Second
	DefaultHistory  = 240

	// MinInterval guards against sampling loops that would peg a core.
	MinInterval = 100 * time.Millisecond
	// MinHistory is the smallest history that can still produce a delta.
	MinHistory = 2
)

// Config holds the runtime configuration for the monitor.
type Config struct {
	// Interval is the minimum spacing between metric samples.
	Interval time.Duration `yaml:"interval"`
	// History is the number of samples retained per metric series.
	History int `yaml:"history"`
	// Network controls which interfaces are tracked and how they are shown.
	Network NetworkConfig `yaml:"network"`
}

// NetworkConfig resolves the per-interface vs. aggregate display choice.
type NetworkConfig struct {
	// Aggregate sums throughput across interfaces into a single pair of
	// rates. When false, a rate line is shown per interface.
	Aggregate bool `yaml:"aggregate"`
	// Interfaces restricts tracking to the named interfaces. Empty means
	// all non-loopback interfaces.
	Interfaces []string `yaml:"interfaces"`
}

// Default returns a Config with every field at its default value.
func Default() *Config {
	return &Config{
		Interval: DefaultInterval,
		History:  DefaultHistory,
		Network: NetworkConfig{
			Aggregate: true,
		},
	}
}

// DefaultPath returns the global config file path, or empty if the home
// directory cannot be determined.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, ConfigFileName)
}

// Load reads config from path, or from the global config file when path is
// empty. A missing file is not an error; defaults apply.
func Load(path string, log logger.Logger) (*Config, error) {
	if log == nil {
		log = logger.Noop()
	}

	explicit := path != ""
	if path == "" {
		path = DefaultPath()
	}

	v := viper.New()
	v.SetDefault("interval", DefaultInterval.String())
	v.SetDefault("history", DefaultHistory)
	v.SetDefault("network.aggregate", true)
	v.SetDefault("network.interfaces", []string{})

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if os.IsNotExist(err) {
				if explicit {
					return nil, errors.WrapWithCode(err, errors.ErrConfig,
						"Config file not found: "+path,
						"Check the path, or run 'panetop init' to create one.")
				}
				log.Debug("no config file at %s, using defaults", path)
			} else {
				return nil, errors.WrapWithCode(err, errors.ErrConfig,
					"Failed to read config file: "+path,
					"Check the file is valid YAML.")
			}
		} else {
			log.Debug("loaded config from %s", path)
		}
	}

	cfg := &Config{
		Interval: v.GetDuration("interval"),
		History:  v.GetInt("history"),
		Network: NetworkConfig{
			Aggregate:  v.GetBool("network.aggregate"),
			Interfaces: v.GetStringSlice("network.interfaces"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the config for values the monitor cannot run with.
func (c *Config) Validate() error {
	if c.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			"Refresh interval is too short: "+c.Interval.String(),
			"Use an interval of at least "+MinInterval.String()+", e.g. 2s.")
	}
	if c.History < MinHistory {
		return errors.New(errors.ErrConfig,
			"History size must be at least 2 samples",
			"Set history to a value like 240.")
	}
	return nil
}

// Write saves the config as YAML to path, creating parent directories.
// Used by 'panetop init' to produce a starter config file.
func (c *Config) Write(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode config", "")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to create config directory: "+filepath.Dir(path),
			"Check directory permissions.")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file: "+path,
			"Check file permissions.")
	}

	return nil
}
