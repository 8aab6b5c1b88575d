// Package app wires configuration into the adapters behind a studio.
package app

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/emiliopalmerini/swatches/internal/adapters/colors"
	"github.com/emiliopalmerini/swatches/internal/adapters/memory"
	"github.com/emiliopalmerini/swatches/internal/adapters/otel"
	"github.com/emiliopalmerini/swatches/internal/adapters/storage"
	"github.com/emiliopalmerini/swatches/internal/adapters/turso"
	"github.com/emiliopalmerini/swatches/internal/library"
	"github.com/emiliopalmerini/swatches/internal/migrate"
	"github.com/emiliopalmerini/swatches/internal/ports"
	"github.com/emiliopalmerini/swatches/internal/studio"
)

// App holds the adapters of one process and the studio built on them.
type App struct {
	Config  *Config
	Log     *zap.Logger
	Store   ports.KeyValueStore
	Metrics ports.MetricsExporter
	Library *library.Gateway
	Studio  *studio.Studio

	db *turso.DB
}

// Open connects the configured store and metrics exporter. The studio is
// created but not started.
func Open(ctx context.Context, cfg *Config, log *zap.Logger) (*App, error) {
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{Config: cfg, Log: log}

	store, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}
	a.Store = store
	a.Metrics = newMetrics(ctx, cfg.Otel, log)
	a.Library = library.NewGateway(store, cfg.StorageKey, log.Named("library"))
	a.Studio = studio.New(cfg.Slots, colors.NewService(), a.Library, a.Metrics, log.Named("studio"))
	return a, nil
}

func (a *App) openStore(ctx context.Context) (ports.KeyValueStore, error) {
	switch a.Config.Store {
	case StoreMemory:
		return memory.NewStore(), nil
	case StoreFile:
		fs, err := storage.NewFileStore()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize file store: %w", err)
		}
		return fs, nil
	case StoreTurso:
		db, err := turso.NewDB(a.Config.Turso)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := migrate.RunAll(ctx, db.DB); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		a.db = db
		return turso.NewKVStore(db.DB), nil
	default:
		return nil, fmt.Errorf("unknown store %q", a.Config.Store)
	}
}

// newMetrics falls back to a no-op exporter when OTEL is off or unreachable.
func newMetrics(ctx context.Context, cfg otel.Config, log *zap.Logger) ports.MetricsExporter {
	if !cfg.Enabled {
		return otel.NewNoOpExporter()
	}
	exp, err := otel.NewExporter(ctx, cfg)
	if err != nil {
		log.Warn("metrics disabled", zap.Error(err))
		return otel.NewNoOpExporter()
	}
	return exp
}

// Close flushes metrics and releases the database.
func (a *App) Close(ctx context.Context) error {
	var err error
	if a.Metrics != nil {
		err = multierr.Append(err, a.Metrics.Close(ctx))
	}
	if a.db != nil {
		err = multierr.Append(err, a.db.Close())
	}
	return err
}
