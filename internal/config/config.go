// Package config provides application configuration loading from environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// DatabaseURL points at the remote Postgres store. Optional: when
	// empty the application runs in local-only mode from the start.
	DatabaseURL string
	CachePath   string
	ListenAddr  string
	JWTSecret   string
	LogLevel    string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		CachePath:   os.Getenv("CACHE_PATH"),
		ListenAddr:  os.Getenv("LISTEN_ADDR"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}

	if cfg.CachePath == "" {
		cfg.CachePath = "data/cache.db"
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that all required configuration is present.
func (c *Config) validate() error {
	var errs []string

	if c.JWTSecret == "" {
		errs = append(errs, "JWT_SECRET is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// RemoteConfigured reports whether a remote store URL is present.
func (c *Config) RemoteConfigured() bool {
	return c.DatabaseURL != ""
}
