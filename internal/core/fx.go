// Package core wires every internal/core/* package together as a single
// fx.Module, following the teacher's internal/fx.CoreModule shape: a
// config loader and logger provided first, then constructor functions
// that pick a concrete backend per config (mirroring CoreModule.NewDatabase's
// dial-then-wrap shape), and the sweep scheduler constructor.
package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"personalfinancedss/internal/core/config"
	"personalfinancedss/internal/core/store"
	"personalfinancedss/internal/core/sweep"
)

// Module provides the simulator-core dependencies shared by any binary
// built on top of internal/core: config, logger, and the snapshot store
// backend. The sweep scheduler additionally needs a sweep.EngineFactory,
// which is scenario-specific and supplied by the binary's own wiring via
// fx.Supply before this module's fx.Provide runs.
var Module = fx.Module("simcore",
	fx.Provide(
		config.Load,
		NewLogger,
		NewSnapshotStore,
		NewSweepScheduler,
	),
)

// NewLogger builds a *zap.Logger from cfg.Logging, mirroring the
// teacher's CoreModule.NewLogger (JSON for production, console for dev).
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Logging.Format == "json" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("core: invalid LOG_LEVEL %q: %w", cfg.Logging.Level, err)
	}
	zcfg.Level = level

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("core: failed to initialize logger: %w", err)
	}

	logger.Info("logger initialized",
		zap.String("level", cfg.Logging.Level),
		zap.String("format", cfg.Logging.Format),
	)
	return logger, nil
}

// NewSnapshotStore selects a store.SnapshotStore backend per
// cfg.Store.Backend, mirroring the teacher's CoreModule.NewDatabase
// dial-then-wrap shape.
func NewSnapshotStore(cfg *config.Config, logger *zap.Logger) (store.SnapshotStore, error) {
	if err := config.ValidateStoreConfig(cfg.Store); err != nil {
		return nil, err
	}

	switch cfg.Store.Backend {
	case "memory":
		return store.NewMemoryStore(), nil

	case "gorm":
		db, err := gorm.Open(gormDialector(cfg.Store.DatabaseURL), &gorm.Config{})
		if err != nil {
			logger.Error("failed to connect to snapshot database", zap.Error(err))
			return nil, fmt.Errorf("core: snapshot database connection failed: %w", err)
		}
		return store.NewGormStore(db, logger)

	case "redis":
		opts, err := redis.ParseURL(cfg.Store.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("core: invalid REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		ttl := time.Duration(cfg.Store.RedisTTLMin) * time.Minute
		return store.NewRedisStore(client, ttl), nil

	default:
		return nil, fmt.Errorf("core: unknown STORE_BACKEND %q", cfg.Store.Backend)
	}
}

// gormDialector picks postgres for a postgres:// DSN and sqlite otherwise,
// the same "DSN scheme decides the driver" shape the teacher's repository
// tests use for sqlite :memory: DSNs, generalized to a runtime choice.
func gormDialector(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return postgres.Open(dsn)
	}
	return sqlite.Open(dsn)
}

// NewSweepScheduler constructs a sweep.Scheduler over cfg.Sweep.Seeds. The
// EngineFactory param is supplied by the binary wiring this module in —
// it is scenario-specific (which nodes, which cfg.Risk defaults) in a way
// internal/core itself has no opinion on.
func NewSweepScheduler(cfg *config.Config, factory sweep.EngineFactory, logger *zap.Logger) *sweep.Scheduler {
	return sweep.NewScheduler(factory, cfg.Sweep.Seeds, logger)
}
