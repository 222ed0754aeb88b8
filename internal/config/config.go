// Package config loads the decint command configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/zeebo/errs"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Error is the class of configuration failures.
var Error = errs.Class("config")

// Config holds the decint configuration.
type Config struct {
	// Workers bounds parallel batch evaluation. Zero means one worker per
	// CPU.
	Workers int `yaml:"workers"`

	// Lenient makes operand parsing skip non digit characters instead of
	// rejecting them.
	Lenient bool `yaml:"lenient"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Workers: 0,
		Lenient: false,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment variables override file values.
func Load(path string) (cfg *Config, err error) {
	defer Error.WrapP(&err)

	cfg = DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Defaults.
		case err != nil:
			return nil, err
		default:
			err = yaml.Unmarshal(data, cfg)
			if err != nil {
				return nil, err
			}
		}
	}

	err = cfg.applyEnvOverrides()
	if err != nil {
		return nil, err
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies DECINT_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("DECINT_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Error.New("DECINT_WORKERS: %v", err)
		}
		c.Workers = n
	}

	if v := os.Getenv("DECINT_LENIENT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Error.New("DECINT_LENIENT: %v", err)
		}
		c.Lenient = b
	}

	if v := os.Getenv("DECINT_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}

	return nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return Error.New("workers must not be negative: %d", c.Workers)
	}

	_, err := c.Level()

	return err
}

// Level returns the configured log level.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return lvl, Error.Wrap(err)
	}

	return lvl, nil
}
