// Package app holds the wiring shared by the api server and the diary CLI:
// logger construction and opening the configured key-value store.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/pkordes/travel-diary/internal/config"
	"github.com/pkordes/travel-diary/internal/device"
	"github.com/pkordes/travel-diary/internal/kv"
	"github.com/pkordes/travel-diary/migrations"
)

// NewLogger returns a JSON slog.Logger writing to w at the named level.
// Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// OpenStore opens the key-value store selected by cfg.StoreBackend.
// The returned close function releases whatever the backend holds and is
// never nil.
//
// For postgres the pool is pinged and pending migrations are applied before
// the store is returned.
func OpenStore(ctx context.Context, cfg config.Config, log *slog.Logger) (kv.Store, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		log.WarnContext(ctx, "using in-memory store; entries are lost on exit")
		return kv.NewMemory(), func() {}, nil

	case config.BackendFile:
		store, err := kv.NewFile(cfg.StoreDir)
		if err != nil {
			return nil, nil, fmt.Errorf("app.OpenStore: %w", err)
		}
		log.InfoContext(ctx, "using file store", "dir", store.Dir())
		return store, func() {}, nil

	case config.BackendPostgres:
		// New() does not open connections immediately; Ping does.
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("app.OpenStore: create pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("app.OpenStore: connect: %w", err)
		}

		sqlDB := stdlib.OpenDBFromPool(pool)
		applied, err := migrations.Up(ctx, sqlDB)
		if err != nil {
			sqlDB.Close()
			pool.Close()
			return nil, nil, fmt.Errorf("app.OpenStore: %w", err)
		}
		log.InfoContext(ctx, "database connection established", "migrations_applied", applied)

		return kv.NewPostgres(pool), func() {
			sqlDB.Close()
			pool.Close()
		}, nil

	default:
		return nil, nil, fmt.Errorf("app.OpenStore: unknown store backend %q", cfg.StoreBackend)
	}
}

// NewGeocoder returns the reverse geocoder configured by cfg.
func NewGeocoder(cfg config.Config) *device.NominatimGeocoder {
	return device.NewNominatimGeocoder(cfg.GeocoderURL, cfg.GeocoderUserAgent, cfg.GeocoderTimeout)
}
