package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"voidminer/internal/domain/tick"
)

const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server      ServerConfig  `yaml:"server" json:"server"`
	Storage     StorageConfig `yaml:"storage" json:"storage"`
	Sector      SectorConfig  `yaml:"sector" json:"sector"`
	Session     SessionConfig `yaml:"session" json:"session"`
	ContentPath string        `yaml:"content_path" json:"content_path"`
	Tuning      tick.Config   `yaml:"tuning" json:"tuning"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr" json:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins"`
	RatePerSecond  float64  `yaml:"rate_per_second" json:"rate_per_second"`
	RateBurst      int      `yaml:"rate_burst" json:"rate_burst"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" json:"driver"`
	DSN    string `yaml:"dsn" json:"dsn"`
}

type SectorConfig struct {
	ID   string `yaml:"id" json:"id"`
	Seed string `yaml:"seed" json:"seed"`
}

type SessionConfig struct {
	MaxCatchUpSeconds int64 `yaml:"max_catch_up_seconds" json:"max_catch_up_seconds"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:          ":8080",
			RatePerSecond: 20,
			RateBurst:     40,
		},
		Storage: StorageConfig{Driver: DriverMemory},
		Sector:  SectorConfig{ID: "sector-alpha", Seed: "sector-alpha"},
		Session: SessionConfig{MaxCatchUpSeconds: 8 * 3600},
		Tuning:  tick.DefaultConfig(),
	}
}

// Load reads an optional YAML file over the defaults and then applies
// environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	ApplyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromEnv resolves the config path from VOIDMINER_CONFIG.
func FromEnv() (Config, error) {
	return Load(strings.TrimSpace(os.Getenv("VOIDMINER_CONFIG")))
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			return fmt.Errorf("storage driver %s requires a dsn", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if strings.TrimSpace(c.Sector.ID) == "" {
		return fmt.Errorf("sector id is required")
	}
	if c.Session.MaxCatchUpSeconds <= 0 {
		return fmt.Errorf("max_catch_up_seconds must be positive")
	}
	return nil
}
