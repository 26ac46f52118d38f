// Package config loads the debt-payoff configuration from YAML with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Engine EngineConfig `yaml:"engine"`
}

type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	RateLimit       int           `yaml:"rate_limit"`        // requests per window per client
	RateWindow      time.Duration `yaml:"rate_limit_window"` // refill period
}

type StoreConfig struct {
	Backend     string `yaml:"backend"` // memory, sqlite or redis
	SQLitePath  string `yaml:"sqlite_path"`
	RedisAddr   string `yaml:"redis_addr"`
	RedisDB     int    `yaml:"redis_db"`
	RedisPrefix string `yaml:"redis_prefix"`
}

type EngineConfig struct {
	MaxPayoffMonths int `yaml:"max_payoff_months"`
}

// DefaultConfig keeps debts in a SQLite file under the user's data directory.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			RateLimit:       60,
			RateWindow:      time.Minute,
		},
		Store: StoreConfig{
			Backend:     StoreSQLite,
			SQLitePath:  filepath.Join(DataDir(), "debts.db"),
			RedisAddr:   "localhost:6379",
			RedisPrefix: "debt-payoff:",
		},
		Engine: EngineConfig{
			MaxPayoffMonths: 1200,
		},
	}
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "debt-payoff")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "debt-payoff")
}

// DefaultPath returns the XDG-compliant config file path.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "debt-payoff", "config.yaml")
}

// Load reads path over the defaults; a missing file is not an error. Environment
// overrides are applied last.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("DEBTPAYOFF_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("DEBTPAYOFF_STORE"); v != "" {
		cfg.Store.Backend = v
	}
	if v := os.Getenv("DEBTPAYOFF_SQLITE_PATH"); v != "" {
		cfg.Store.SQLitePath = v
	}
	if v := os.Getenv("DEBTPAYOFF_REDIS_ADDR"); v != "" {
		cfg.Store.RedisAddr = v
	}
	if v := os.Getenv("DEBTPAYOFF_MAX_PAYOFF_MONTHS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DEBTPAYOFF_MAX_PAYOFF_MONTHS: %w", err)
		}
		cfg.Engine.MaxPayoffMonths = n
	}
	return nil
}

// Validate rejects settings the rest of the program cannot run with.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case StoreMemory, StoreSQLite, StoreRedis:
	default:
		return fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
	if c.Store.Backend == StoreSQLite && c.Store.SQLitePath == "" {
		return fmt.Errorf("store.sqlite_path is required for the sqlite backend")
	}
	if c.Engine.MaxPayoffMonths <= 0 {
		return fmt.Errorf("engine.max_payoff_months must be positive")
	}
	if c.Server.RateLimit <= 0 || c.Server.RateWindow <= 0 {
		return fmt.Errorf("server.rate_limit and server.rate_limit_window must be positive")
	}
	return nil
}

// Save writes cfg as YAML, creating the directory if needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0o600)
}
