// Package config loads process configuration from the environment, with an
// optional .env file in the working directory.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Console configures cmd/server.
type Console struct {
	Port     string `env:"PORT" envDefault:"8080"`
	APIURL   string `env:"EMPLOYEE_API_URL" envDefault:"http://localhost:5000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Backend configures cmd/backend.
type Backend struct {
	Port        string `env:"BACKEND_PORT" envDefault:"5000"`
	DBPath      string `env:"DB_PATH" envDefault:"employees.db"`
	AutoMigrate bool   `env:"AUTO_MIGRATE" envDefault:"true"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadDotEnv reads .env if present. A missing file is only worth a warning.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
}

// Parse fills target from environment variables.
func Parse(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Logger builds a text slog.Logger at the named level ("debug", "info",
// "warn", "error"); unknown names fall back to info.
func Logger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn", "warning":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
