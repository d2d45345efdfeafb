// Package store implements core.Store over PostgreSQL, SQLite and process memory.
package store

import (
	"context"
	"strings"

	"github.com/JonMunkholm/onboard/internal/config"
	"github.com/JonMunkholm/onboard/internal/core"
)

// Open returns the store selected by cfg.URL and makes sure its tables exist.
//
//	postgres://… or postgresql://…  PostgreSQL via pgxpool
//	memory://                       in-process, lost on exit
//	sqlite://path or a bare path    SQLite file
func Open(ctx context.Context, cfg config.DatabaseConfig) (core.Store, error) {
	switch Kind(cfg.URL) {
	case "postgres":
		p, err := NewPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "memory":
		return NewMemory(), nil
	default:
		s, err := NewSQLite(ctx, strings.TrimPrefix(cfg.URL, "sqlite://"))
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

// Kind names the backend a URL selects, for startup logs.
func Kind(url string) string {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return "postgres"
	case strings.HasPrefix(url, "memory://"):
		return "memory"
	default:
		return "sqlite"
	}
}
