package postgres

import (
	"context"
	"database/sql"
	"embed"
	"log/slog"
	"sync"
	"time"

	"rently/config"
	"rently/internal/errors"

	"github.com/pressly/goose/v3"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	migrationsDir    = "migrations"
	migrationTimeout = time.Minute
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// goose keeps its dialect and filesystem in package state.
var gooseSetup sync.Once
var gooseSetupErr error

func setupGoose() error {
	gooseSetup.Do(func() {
		goose.SetBaseFS(embedMigrations)
		gooseSetupErr = goose.SetDialect("postgres")
	})

	return errors.Wrap(gooseSetupErr, "configure goose")
}

// Migrator applies the embedded schema migrations.
type Migrator struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewMigrator builds a Migrator on the pool behind db.
func NewMigrator(db *gorm.DB, logger *slog.Logger) (*Migrator, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return &Migrator{db: sqlDB, logger: logger}, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	if err := setupGoose(); err != nil {
		return err
	}

	runCtx, cancel := context.WithTimeout(ctx, migrationTimeout)
	defer cancel()

	m.logger.Info("Applying database migrations")
	if err := goose.UpContext(runCtx, m.db, migrationsDir); err != nil {
		return errors.Wrap(err, "apply migrations")
	}
	m.logger.Info("Database migrations applied")

	return nil
}

// Down rolls back to targetVersion, or only the latest migration when targetVersion is zero.
func (m *Migrator) Down(ctx context.Context, targetVersion int64) error {
	if err := setupGoose(); err != nil {
		return err
	}

	runCtx, cancel := context.WithTimeout(ctx, migrationTimeout)
	defer cancel()

	if targetVersion > 0 {
		m.logger.Info("Rolling back migrations", slog.Int64("target", targetVersion))

		return errors.Wrapf(goose.DownToContext(runCtx, m.db, migrationsDir, targetVersion), "rollback to version %d", targetVersion)
	}

	m.logger.Info("Rolling back latest migration")

	return errors.Wrap(goose.DownContext(runCtx, m.db, migrationsDir), "rollback latest migration")
}

// Status logs applied and pending migrations.
func (m *Migrator) Status(ctx context.Context) error {
	if err := setupGoose(); err != nil {
		return err
	}

	return errors.Wrap(goose.StatusContext(ctx, m.db, migrationsDir), "migration status")
}

// MigrationParams holds dependencies for RegisterAutoMigrate, injected by Fx.
type MigrationParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Migrator *Migrator
	Logger   *slog.Logger
}

// RegisterAutoMigrate runs Up on start when migration.autoMigrate is set.
// It is registered after the database provider, so the pool has already been pinged.
func RegisterAutoMigrate(params MigrationParams) {
	if params.Config.Migration == nil || !params.Config.Migration.AutoMigrate {
		params.Logger.Info("Automatic migrations disabled")

		return
	}

	params.Lc.Append(fx.Hook{
		OnStart: params.Migrator.Up,
	})
}
