// Package config loads client configuration from the environment, with an
// optional .env file for development setups.
package config

import (
	"os"
	"path/filepath"
	"time"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL  string        `env:"ANITRACK_API_URL" validate:"required,url"`
	HTTPTimeout time.Duration `env:"ANITRACK_HTTP_TIMEOUT"`
	TokenFile   string        `env:"ANITRACK_TOKEN_FILE" validate:"required"`
	LogLevel    string        `env:"ANITRACK_LOG_LEVEL" validate:"loglevel"`
	LogFile     string        `env:"ANITRACK_LOG_FILE"`
}

func validateLogLevel(fieldLevel validator.FieldLevel) bool {
	switch fieldLevel.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// stateDir is where the client keeps its few local files (token, log).
func stateDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".anitrack")
}

// Load reads the configuration, filling defaults for anything unset.
// A .env file in the working directory is honored but not required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:  "http://localhost:8000",
		HTTPTimeout: 15 * time.Second,
		TokenFile:   filepath.Join(stateDir(), "token"),
		LogLevel:    "info",
		LogFile:     filepath.Join(stateDir(), "anitrack.log"),
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validate.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return nil, err
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
