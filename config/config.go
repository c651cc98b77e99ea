// Package config loads process-wide configuration once at startup.
// Values come from the environment (a .env file is picked up if present)
// under the SOCIALPULSE_ prefix, e.g. SOCIALPULSE_DATABASE_HOST.
package config

import (
	"fmt"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
}

type ServerConfig struct {
	Port string `koanf:"port"`
}

type DatabaseConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
	SSLMode  string `koanf:"sslmode"`
}

// Load reads the environment into a Config. The struct is constructed
// here once and handed to the database constructor; nothing reads the
// environment after startup.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider("SOCIALPULSE_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "SOCIALPULSE_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{Port: "3000"},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    5432,
			SSLMode: "disable",
		},
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Database.User == "" || cfg.Database.Name == "" {
		return nil, fmt.Errorf("database user and name must be configured")
	}

	return cfg, nil
}
