// Package config loads runtime settings for the CRM backend.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// CRM_* environment variables, then command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string        `yaml:"addr"`
	DBPath        string        `yaml:"db_path"`
	SessionTTL    time.Duration `yaml:"session_ttl"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
	Login         LoginConfig   `yaml:"login"`
	CORS          CORSConfig    `yaml:"cors"`
	Log           LogConfig     `yaml:"log"`
}

// LoginConfig controls the per-IP login throttle. MaxAttempts <= 0 disables it.
type LoginConfig struct {
	MaxAttempts int           `yaml:"max_attempts"`
	Window      time.Duration `yaml:"window"`
	Block       time.Duration `yaml:"block"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns development defaults.
func Default() *Config {
	return &Config{
		Addr:          ":8080",
		DBPath:        "./crmdesk.db",
		SessionTTL:    24 * time.Hour,
		SweepInterval: 15 * time.Minute,
		Login: LoginConfig{
			MaxAttempts: 5,
			Window:      15 * time.Minute,
			Block:       15 * time.Minute,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds a Config from defaults, the YAML file named by -config (or
// CRM_CONFIG), the environment and the remaining flags in args.
func Load(args []string) (*Config, error) {
	cfg := Default()

	fs := flag.NewFlagSet("crmdesk", flag.ContinueOnError)
	configPath := fs.String("config", os.Getenv("CRM_CONFIG"), "path to YAML config file")
	addr := fs.String("addr", "", "address to listen on")
	dbPath := fs.String("db", "", "path to the SQLite database")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if *configPath != "" {
		if err := cfg.loadFile(*configPath); err != nil {
			return nil, err
		}
	}

	if err := cfg.loadEnv(); err != nil {
		return nil, err
	}

	if *addr != "" {
		cfg.Addr = *addr
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.DBPath != ":memory:" && !filepath.IsAbs(cfg.DBPath) {
		abs, err := filepath.Abs(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve database path: %w", err)
		}
		cfg.DBPath = abs
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

func (c *Config) loadEnv() error {
	if v := os.Getenv("CRM_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("CRM_DB_PATH"); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv("CRM_SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid CRM_SESSION_TTL: %w", err)
		}
		c.SessionTTL = d
	}
	if v := os.Getenv("CRM_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate rejects settings the server cannot run with.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.DBPath == "" {
		return errors.New("db_path must not be empty")
	}
	if c.SessionTTL < time.Second {
		return fmt.Errorf("session_ttl must be at least 1s, got %s", c.SessionTTL)
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("sweep_interval must be positive, got %s", c.SweepInterval)
	}
	if c.Login.MaxAttempts > 0 && (c.Login.Window <= 0 || c.Login.Block <= 0) {
		return errors.New("login.window and login.block must be positive when login.max_attempts is set")
	}
	return nil
}
