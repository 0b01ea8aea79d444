package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"rently/config"
	"rently/internal/domain/lifecycle"
	"rently/internal/errors"
	"rently/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// accountStoreName labels the pool statistics exported for the account store.
const accountStoreName = "accounts"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the account store pool (primary plus replicas) through go-lib.
// The pool is pinged on start, exported to Prometheus and closed on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Account writes are single statements.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if err := params.Metrics.RegisterDBStats(sqlDB, accountStoreName); err != nil {
		return nil, err
	}

	bindPoolLifecycle(params.Lifecycle, sqlDB, params.Logger)

	return db, nil
}

func bindPoolLifecycle(lc fx.Lifecycle, sqlDB *sql.DB, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping account store")
			}

			stats := sqlDB.Stats()
			logger.Info("Account store connected",
				slog.Int("maxOpenConns", stats.MaxOpenConnections),
				slog.Int("openConns", stats.OpenConnections),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stats := sqlDB.Stats()
			logger.Info("Closing account store",
				slog.Int64("waitCountTotal", stats.WaitCount),
				slog.Duration("waitDurationTotal", stats.WaitDuration),
			)

			return errors.Wrap(sqlDB.Close(), "close account store")
		},
	})
}
