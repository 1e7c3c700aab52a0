package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backend selectors accepted by BOOKING_STORAGE.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Config captures environment driven configuration values for the booking API.
type Config struct {
	HTTPPort        int
	Storage         string
	SQLiteDSN       string
	ShutdownTimeout time.Duration
}

// Load parses configuration values from the current process environment.
//
// Every value is optional; the defaults run the API on port 3000 over the
// in-memory store. Invalid values are collected and reported together.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:        3000,
		Storage:         StorageMemory,
		SQLiteDSN:       "file:booking.db?_foreign_keys=on",
		ShutdownTimeout: 10 * time.Second,
	}

	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("BOOKING_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "BOOKING_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if storage := strings.TrimSpace(os.Getenv("BOOKING_STORAGE")); storage != "" {
		switch storage {
		case StorageMemory, StorageSQLite:
			cfg.Storage = storage
		default:
			invalid = append(invalid, "BOOKING_STORAGE")
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("BOOKING_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if timeoutValue := strings.TrimSpace(os.Getenv("BOOKING_SHUTDOWN_TIMEOUT")); timeoutValue != "" {
		timeout, err := time.ParseDuration(timeoutValue)
		if err != nil || timeout <= 0 {
			invalid = append(invalid, "BOOKING_SHUTDOWN_TIMEOUT")
		} else {
			cfg.ShutdownTimeout = timeout
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
