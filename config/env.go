package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ApplyEnv layers RISKCALC_* environment variables (and an optional .env
// file in the working directory) over an already-loaded profile. Variables
// that are unset leave the profile value alone.
func ApplyEnv(cfg *Config) error {
	// A missing .env file is fine; explicit env vars still apply.
	_ = godotenv.Load()

	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("process environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config after env overrides: %w", err)
	}

	return nil
}
