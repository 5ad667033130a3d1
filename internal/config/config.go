package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

type Config struct {
	DatabaseDriver string
	DatabaseURL    string
	MigrationsPath string
	ServerPort     int
	RequestTimeout time.Duration
	LogLevel       slog.Level
	LogFormat      string
}

// Load reads the configuration from the environment, picking up a .env file
// first when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	driver := getenv("DATABASE_DRIVER", DriverSQLite)
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", driver)
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		if driver == DriverPostgres {
			return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
		}
		dbURL = "swiss.db?_journal_mode=WAL"
	}

	port, err := strconv.Atoi(getenv("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	timeout, err := time.ParseDuration(getenv("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT environment variable: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getenv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL environment variable: %w", err)
	}

	format := strings.ToLower(getenv("LOG_FORMAT", "text"))
	if format != "text" && format != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", format)
	}

	return &Config{
		DatabaseDriver: driver,
		DatabaseURL:    dbURL,
		MigrationsPath: getenv("MIGRATIONS_PATH", "file://migrations/"+driver),
		ServerPort:     port,
		RequestTimeout: timeout,
		LogLevel:       level,
		LogFormat:      format,
	}, nil
}

// NewLogger builds the process logger described by the config.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
