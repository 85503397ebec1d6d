// Package config loads the server configuration from a YAML file.
// Command-line flags override file values; the file overrides defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "foyer.yaml"

// Config is the server configuration.
type Config struct {
	Addr       string `yaml:"addr"`
	AppName    string `yaml:"app_name"`
	ContentDir string `yaml:"content_dir"`
	LogLevel   string `yaml:"log_level"`
	Metrics    bool   `yaml:"metrics"`
	Watch      bool   `yaml:"watch"`
	Cache      Cache  `yaml:"cache"`
}

// Cache configures the rendered-page cache.
type Cache struct {
	// Backend is one of "none", "memory", "redis".
	Backend       string `yaml:"backend"`
	TTL           string `yaml:"ttl"`
	Prefix        string `yaml:"prefix"`
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Addr:     ":8080",
		AppName:  "Foyer",
		LogLevel: "info",
		Metrics:  true,
		Cache: Cache{
			Backend:   "memory",
			RedisAddr: "localhost:6379",
		},
	}
}

// Load reads the configuration file at path over the defaults.
// An empty path falls back to DefaultFile in the working directory;
// in that case a missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case "", "none", "memory", "redis":
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}
	if _, err := c.Cache.TTLDuration(); err != nil {
		return err
	}
	return nil
}

// TTLDuration parses the cache TTL. Empty means no expiration.
func (c Cache) TTLDuration() (time.Duration, error) {
	if c.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.TTL)
	if err != nil {
		return 0, fmt.Errorf("invalid cache ttl %q: %w", c.TTL, err)
	}
	return d, nil
}
