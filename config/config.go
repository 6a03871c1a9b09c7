// Package config loads the settings that control how validation results are
// logged and formatted. Values come from the process environment, optionally
// layered over one or more .env files.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is the top-level configuration.
type Config struct {
	Logging    Logging
	Validation Validation
}

// Logging configures the slog default logger.
type Logging struct {
	// JSON switches the handler from text to JSON output.
	JSON bool `env:"LOG_JSON" envDefault:"false"`

	// Level is the minimum level, in slog's textual form ("debug", "info", "warn", "error").
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// LegacyLevel is the level assigned to lines written through the standard log package.
	LegacyLevel string `env:"LOG_LEGACY_LEVEL" envDefault:"info"`

	// Output is either "stdout" or "stderr".
	Output string `env:"LOG_OUTPUT" envDefault:"stdout"`
}

// Validation configures diagnostic formatting.
type Validation struct {
	// Markup selects how severity tags are rendered: "plain", "rich" or "ansi".
	Markup string `env:"VARCHECK_MARKUP" envDefault:"plain"`

	// OwnerKind is the noun printed after the owner name, as in "in 'Player' object".
	OwnerKind string `env:"VARCHECK_OWNER_KIND" envDefault:"object"`
}

// Load builds a Config. Each file is read with godotenv, later files override
// earlier ones, and real environment variables override all files.
func Load(files ...string) (*Config, error) {
	vars := make(map[string]string)

	for _, file := range files {
		fileVars, err := godotenv.Read(file)
		if err != nil {
			return nil, fmt.Errorf("error reading env file %q: %w", file, err)
		}

		for k, v := range fileVars {
			vars[k] = v
		}
	}

	for k, v := range env.ToMap(os.Environ()) {
		vars[k] = v
	}

	return parse(vars)
}

// parse populates a Config from an explicit variable map.
func parse(vars map[string]string) (*Config, error) {
	cfg := &Config{}

	err := env.ParseWithOptions(cfg, env.Options{Environment: vars})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return cfg, nil
}
