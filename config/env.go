package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "LANDERSIM_"

// LoadEnvFiles loads .env files into the process environment. Missing files
// are skipped and variables that are already set are kept.
func LoadEnvFiles(files ...string) error {
	for _, f := range files {
		err := godotenv.Load(f)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}

	return nil
}

// ApplyEnv overrides the configuration with LANDERSIM_* variables. Unset
// variables keep the current values.
func (c *Config) ApplyEnv() error {
	err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix})
	if err != nil {
		return fmt.Errorf("reading environment: %w", err)
	}

	return nil
}
