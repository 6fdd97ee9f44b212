package config

import (
	"os"
	"strconv"
	"strings"
)

func ApplyEnv(cfg *Config) {
	if v := stringEnv("VOIDMINER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := stringEnv("VOIDMINER_DB_DRIVER"); v != "" {
		cfg.Storage.Driver = strings.ToLower(v)
	}
	if v := stringEnv("VOIDMINER_DB_DSN"); v != "" {
		cfg.Storage.DSN = v
		if cfg.Storage.Driver == DriverMemory && stringEnv("VOIDMINER_DB_DRIVER") == "" {
			cfg.Storage.Driver = DriverPostgres
		}
	}
	if v := stringEnv("VOIDMINER_SECTOR"); v != "" {
		cfg.Sector.ID = v
	}
	if v := stringEnv("VOIDMINER_SEED"); v != "" {
		cfg.Sector.Seed = v
	}
	if v := stringEnv("VOIDMINER_CONTENT"); v != "" {
		cfg.ContentPath = v
	}
	cfg.Session.MaxCatchUpSeconds = int64Env("VOIDMINER_MAX_CATCHUP_SECONDS", cfg.Session.MaxCatchUpSeconds)
}

func stringEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func int64Env(key string, fallback int64) int64 {
	v := stringEnv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
