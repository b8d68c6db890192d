// Package config resolves the browser settings from defaults, a config file,
// the environment, and command-line flags, in that order of precedence.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "PLACEHOLDER_"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the resolved settings.
type Config struct {
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	RedisURL     string        `mapstructure:"redis_url"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`
	MetricsAddr  string        `mapstructure:"metrics_addr"`
	Fixtures     string        `mapstructure:"fixtures"`
	Debug        bool          `mapstructure:"debug"`
	NoClear      bool          `mapstructure:"no_clear"`
	Plain        bool          `mapstructure:"plain"`
	MaxUsers     int           `mapstructure:"max_users"`
	MaxPosts     int           `mapstructure:"max_posts"`
	MaxInputSize int           `mapstructure:"max_input_size"`
}

// Keys lists every recognised setting.
var Keys = []string{
	"base_url", "timeout", "redis_url", "cache_ttl", "metrics_addr", "fixtures",
	"debug", "no_clear", "plain", "max_users", "max_posts", "max_input_size",
}

// Defaults returns the lowest-precedence layer.
func Defaults() map[string]any {
	return map[string]any{
		"base_url":       "https://jsonplaceholder.typicode.com",
		"timeout":        "30s",
		"redis_url":      "",
		"cache_ttl":      "5m",
		"metrics_addr":   "",
		"fixtures":       "",
		"debug":          false,
		"no_clear":       false,
		"plain":          false,
		"max_users":      10,
		"max_posts":      5,
		"max_input_size": 4096,
	}
}

// LookupFunc reads one environment variable.
type LookupFunc func(key string) (string, bool)

// Load resolves the configuration using the process environment.
// path may be empty; overrides (usually flags that were set) win over everything else.
func Load(path string, overrides map[string]any) (*Config, error) {
	return LoadWith(path, os.LookupEnv, overrides)
}

// LoadWith is Load with an explicit environment lookup.
func LoadWith(path string, lookup LookupFunc, overrides map[string]any) (*Config, error) {
	raw := Defaults()

	if path != "" {
		file, err := readFile(path)
		if err != nil {
			return nil, err
		}
		merge(raw, file)
	}

	if lookup != nil {
		merge(raw, fromEnv(lookup))
	}
	merge(raw, overrides)

	var cfg Config
	if err := decode(raw, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	if c.Fixtures == "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: base_url %q must be an http(s) URL", ErrInvalid, c.BaseURL)
		}
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalid)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("%w: cache_ttl must not be negative", ErrInvalid)
	}
	if c.MaxUsers < 1 || c.MaxPosts < 1 {
		return fmt.Errorf("%w: max_users and max_posts must be at least 1", ErrInvalid)
	}
	if c.MaxInputSize < 1 {
		return fmt.Errorf("%w: max_input_size must be at least 1", ErrInvalid)
	}
	return nil
}

func readFile(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	out := map[string]any{}
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" {
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}
	return out, nil
}

func fromEnv(lookup LookupFunc) map[string]any {
	out := map[string]any{}
	for _, key := range Keys {
		if v, ok := lookup(EnvPrefix + strings.ToUpper(key)); ok {
			out[key] = v
		}
	}
	return out
}

func merge(dst, src map[string]any) {
	for k, v := range src {
		dst[k] = v
	}
}

func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
