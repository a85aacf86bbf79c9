// Package config selects per-environment settings. Environments mirror the
// usual trio plus a default alias: development and production store to a
// local file, testing stores to an ephemeral in-memory database.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Environment names accepted by Load.
const (
	EnvDevelopment = "development"
	EnvTesting     = "testing"
	EnvProduction  = "production"
	EnvDefault     = "default"
)

const defaultDBPath = "trailfood.sqlite3"

// Config holds the settings for one named environment.
type Config struct {
	Env     string
	DBPath  string
	Debug   bool
	Testing bool
}

// Load returns the configuration for the named environment. An empty name
// falls back to TRAILFOOD_ENV, then to the default environment. A .env file
// in the working directory is read first so DATABASE_URL can live there.
func Load(env string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	if env == "" {
		env = os.Getenv("TRAILFOOD_ENV")
	}
	if env == "" {
		env = EnvDefault
	}

	switch env {
	case EnvDevelopment, EnvDefault:
		return &Config{Env: EnvDevelopment, DBPath: defaultDBPath, Debug: true}, nil
	case EnvTesting:
		return &Config{Env: EnvTesting, DBPath: ":memory:", Debug: true, Testing: true}, nil
	case EnvProduction:
		path := os.Getenv("DATABASE_URL")
		if path == "" {
			path = defaultDBPath
		}
		return &Config{Env: EnvProduction, DBPath: path}, nil
	default:
		return nil, fmt.Errorf("unknown environment %q", env)
	}
}
