// Package config loads the settings of the genlab command.
//
// Values come from, in increasing precedence: built-in defaults, an optional
// YAML file named by GENLAB_CONFIG, and GENLAB_* environment variables.
// A .env file is loaded by the command itself (github.com/joho/godotenv/autoload),
// so this package only reads the process environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvFile             = "GENLAB_CONFIG"
	EnvEnv              = "GENLAB_ENV"
	EnvLogLevel         = "GENLAB_LOG_LEVEL"
	EnvAPIBaseURL       = "GENLAB_API_BASE_URL"
	EnvTimeoutMs        = "GENLAB_TIMEOUT_MS"
	EnvFetchConcurrency = "GENLAB_FETCH_CONCURRENCY"
)

var (
	// ErrInvalidTimeout is returned for a non-positive request timeout.
	ErrInvalidTimeout = errors.New("config: timeout must be > 0")

	// ErrInvalidConcurrency is returned for a non-positive fetch concurrency.
	ErrInvalidConcurrency = errors.New("config: fetch concurrency must be > 0")

	// ErrInvalidLogLevel is returned for a log level slog does not know.
	ErrInvalidLogLevel = errors.New("config: unknown log level")
)

// Config holds the command settings.
type Config struct {
	Env              string `yaml:"env"`
	LogLevel         string `yaml:"log_level"`
	APIBaseURL       string `yaml:"api_base_url"`
	TimeoutMs        int    `yaml:"timeout_ms"`
	FetchConcurrency int    `yaml:"fetch_concurrency"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Env:              "local",
		LogLevel:         "info",
		TimeoutMs:        5_000,
		FetchConcurrency: 4,
	}
}

// Timeout returns TimeoutMs as a duration.
func (c Config) Timeout() time.Duration { return time.Duration(c.TimeoutMs) * time.Millisecond }

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return lvl, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.TimeoutMs <= 0 {
		return ErrInvalidTimeout
	}
	if c.FetchConcurrency <= 0 {
		return ErrInvalidConcurrency
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Load builds the configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom builds the configuration using getenv to read variables.
func LoadFrom(getenv func(string) string) (Config, error) {
	cfg := Default()

	if path := getenv(EnvFile); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	cfg.Env = envString(getenv, EnvEnv, cfg.Env)
	cfg.LogLevel = strings.ToLower(envString(getenv, EnvLogLevel, cfg.LogLevel))
	cfg.APIBaseURL = envString(getenv, EnvAPIBaseURL, cfg.APIBaseURL)

	var err error
	if cfg.TimeoutMs, err = envInt(getenv, EnvTimeoutMs, cfg.TimeoutMs); err != nil {
		return Config{}, err
	}
	if cfg.FetchConcurrency, err = envInt(getenv, EnvFetchConcurrency, cfg.FetchConcurrency); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeFile overlays the values set in the YAML file at path.
func (c *Config) mergeFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func envString(getenv func(string) string, k, def string) string {
	if v := getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(getenv func(string) string, k string, def int) (int, error) {
	v := getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s=%q is not an integer", k, v)
	}
	return n, nil
}
