// ============================================================================
// toolctl - Foundry Lab Tool Control CLI
// ============================================================================
//
// Package:     config
// Description: Optional client configuration from TOML/YAML with env overrides
// Author:      Foundry Automation
// Created:     2026-08-14
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	coreerrors "github.com/foundry-science/toolctl/pkg/core/errors"
)

// DefaultServerAddress is where a locally started tool server listens.
const DefaultServerAddress = "http://127.0.0.1:50051"

// Duration wraps time.Duration for text-based config formats
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string like "30s" or "1h30m"
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

// MarshalText renders the duration in Go's canonical form
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config holds the client-side configuration. The RPC core itself never
// reads files or the environment; this layer belongs to the CLI front end.
type Config struct {
	Server ServerConfig `toml:"server" yaml:"server"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// ServerConfig holds connection settings for the tool driver server
type ServerConfig struct {
	Address string   `toml:"address" yaml:"address" env:"TOOLCTL_SERVER"`
	Timeout Duration `toml:"timeout" yaml:"timeout" env:"TOOLCTL_TIMEOUT"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `toml:"level" yaml:"level" env:"TOOLCTL_LOG_LEVEL"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Server: ServerConfig{
			Address: DefaultServerAddress,
			Timeout: Duration{30 * time.Second},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the effective configuration: defaults, then the optional
// config file (format detected from the extension), then environment
// overrides. An empty path skips the file layer; a named file that cannot
// be read is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(&cfg, path); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, coreerrors.Wrap(err, coreerrors.CodeInvalidConfig, "failed to parse environment overrides")
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func loadFile(cfg *Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return coreerrors.Wrapf(err, coreerrors.CodeInvalidConfig, "failed to read config file %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(content, cfg); err != nil {
			return coreerrors.Wrapf(err, coreerrors.CodeInvalidConfig, "failed to parse TOML config %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return coreerrors.Wrapf(err, coreerrors.CodeInvalidConfig, "failed to parse YAML config %s", path)
		}
	default:
		return coreerrors.Newf(coreerrors.CodeInvalidConfig,
			"unsupported config format %q (want .toml, .yaml or .yml)", filepath.Ext(path))
	}

	return nil
}

func (c *Config) validate() error {
	if c.Server.Address == "" {
		return coreerrors.New(coreerrors.CodeInvalidConfig, "server address must not be empty")
	}
	if c.Server.Timeout.Duration < 0 {
		return coreerrors.Newf(coreerrors.CodeInvalidConfig,
			"server timeout must not be negative, got %s", c.Server.Timeout)
	}
	return nil
}

// String renders the effective config for --verbose diagnostics
func (c *Config) String() string {
	return fmt.Sprintf("server=%s timeout=%s log=%s",
		c.Server.Address, c.Server.Timeout.Duration, c.Log.Level)
}
