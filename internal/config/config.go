// Package config loads and validates application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/pkordes/travel-diary/internal/device"
	"github.com/pkordes/travel-diary/internal/domain"
)

// Storage backends accepted by STORE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Config holds all configuration values for the API server and the CLI.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"].
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// StoreBackend selects where entries are kept: memory, file or postgres.
	// Defaults to "file".
	StoreBackend string

	// StoreDir is the directory used by the file backend. Defaults to "./data".
	StoreDir string

	// PhotoDir is where the CLI copies captured photos. Defaults to "./data/photos".
	PhotoDir string

	// DatabaseURL is the Postgres connection string.
	// Required when StoreBackend is postgres.
	DatabaseURL string

	// GeocoderURL is the base URL of the Nominatim-compatible reverse geocoder.
	GeocoderURL string

	// GeocoderUserAgent identifies this app to the geocoder.
	GeocoderUserAgent string

	// GeocoderTimeout bounds each reverse geocoding request. Defaults to 10s.
	GeocoderTimeout time.Duration

	// Theme is the default colour scheme for the CLI.
	Theme domain.Theme

	// MaxBodyBytes caps request bodies. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// A .env file in the working directory, if present, is loaded first; variables
// already set in the environment win.
// Returns an error listing every variable that is missing or invalid.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CORSOrigins:       splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StoreBackend:      strings.ToLower(getEnv("STORE_BACKEND", BackendFile)),
		StoreDir:          getEnv("STORE_DIR", "./data"),
		PhotoDir:          getEnv("PHOTO_DIR", "./data/photos"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		GeocoderURL:       getEnv("GEOCODER_URL", device.DefaultNominatimURL),
		GeocoderUserAgent: getEnv("GEOCODER_USER_AGENT", "travel-diary/1.0"),
	}

	var missing, invalid []string

	switch cfg.StoreBackend {
	case BackendMemory, BackendFile:
	case BackendPostgres:
		if cfg.DatabaseURL == "" {
			missing = append(missing, "DATABASE_URL")
		}
	default:
		invalid = append(invalid, "STORE_BACKEND")
	}

	timeout, err := time.ParseDuration(getEnv("GEOCODER_TIMEOUT", "10s"))
	if err != nil || timeout <= 0 {
		invalid = append(invalid, "GEOCODER_TIMEOUT")
	}
	cfg.GeocoderTimeout = timeout

	theme, err := domain.ParseTheme(os.Getenv("THEME"))
	if err != nil {
		invalid = append(invalid, "THEME")
	}
	cfg.Theme = theme

	maxBody, err := strconv.ParseInt(getEnv("MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil || maxBody <= 0 {
		invalid = append(invalid, "MAX_BODY_BYTES")
	}
	cfg.MaxBodyBytes = maxBody

	var problems []string
	if len(missing) > 0 {
		problems = append(problems, "required environment variables not set: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		problems = append(problems, "invalid environment variables: "+strings.Join(invalid, ", "))
	}
	if len(problems) > 0 {
		return Config{}, errors.New(strings.Join(problems, "; "))
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
