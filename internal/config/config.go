// Package config loads asciiwalk settings from asciiwalk.yaml and merges
// command-line overrides on top.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "asciiwalk.yaml"

// Output formats accepted by the walk command.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr string `yaml:"addr" mapstructure:"addr"`
}

// RedisConfig enables the Redis result store when Addr is set.
type RedisConfig struct {
	Addr     string        `yaml:"addr" mapstructure:"addr"`
	Password string        `yaml:"password" mapstructure:"password"`
	DB       int           `yaml:"db" mapstructure:"db"`
	TTL      time.Duration `yaml:"ttl" mapstructure:"ttl"`
	Prefix   string        `yaml:"prefix,omitempty" mapstructure:"prefix"`
}

// Config models asciiwalk.yaml.
type Config struct {
	LogLevel string       `yaml:"log_level" mapstructure:"log_level"`
	MaxSteps int          `yaml:"max_steps" mapstructure:"max_steps"`
	Format   string       `yaml:"format" mapstructure:"format"`
	Color    bool         `yaml:"color" mapstructure:"color"`
	Server   ServerConfig `yaml:"server" mapstructure:"server"`
	Redis    RedisConfig  `yaml:"redis" mapstructure:"redis"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		LogLevel: "info",
		Format:   FormatText,
		Color:    true,
		Server:   ServerConfig{Addr: ":8080"},
		Redis:    RedisConfig{TTL: 24 * time.Hour},
	}
}

// Load reads path on top of the defaults. A missing file is not an error
// unless the path was given explicitly.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Merge applies overrides, keyed like the YAML file, onto c.
// Only keys present in overrides are touched. Durations may be given as strings.
func (c *Config) Merge(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		Result:           c,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := dec.Decode(overrides); err != nil {
		return fmt.Errorf("invalid config override: %w", err)
	}
	return c.Validate()
}

// Validate checks values that cannot be caught by the YAML decoder.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatMarkdown:
	default:
		return fmt.Errorf("unknown format %q (want text, json or markdown)", c.Format)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps must not be negative, got %d", c.MaxSteps)
	}
	if c.Redis.TTL < 0 {
		return fmt.Errorf("redis.ttl must not be negative, got %s", c.Redis.TTL)
	}
	return nil
}
