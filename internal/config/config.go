// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds everything the server needs from the environment. Defaults are
// chosen so `go run ./cmd/server` works with no setup at all: an SQLite file
// under data/ and the bundled static assets.
type Config struct {
	Port      int    `env:"PORT" env-default:"8080"`
	DBPath    string `env:"DB_PATH" env-default:"data/tracker.db"`
	StaticDir string `env:"STATIC_DIR" env-default:"web/static"`
}

// Load reads the configuration from environment variables.
// (.env loading happens in main, before this runs.)
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}
