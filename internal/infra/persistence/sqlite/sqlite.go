// Package sqlite opens the SQLite databases used by the client session store
// and the development backend.
package sqlite

import (
	"context"
	"log/slog"

	"freshdeal/config"
	"freshdeal/internal/domain/lifecycle"
	"freshdeal/internal/errors"
	"freshdeal/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open opens the database at the configured session DSN, migrates the session
// table and ties the connection to lc.
func Open(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := Connect(cfg.Session.DSN, cfg, logger, &model.SessionModel{})
	if err != nil {
		return nil, err
	}

	return db, Bind(lc, db)
}

// Connect opens dsn and migrates models.
func Connect(dsn string, cfg *config.Config, logger *slog.Logger, models ...any) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newQueryLogger(logger, cfg, dsn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}
	// SQLite serializes writers; one connection avoids "database is locked"
	// and keeps a :memory: database alive across queries.
	sqlDB.SetMaxOpenConns(1)

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, errors.Wrap(err, "failed to migrate SQLite schema")
		}
	}

	return db, nil
}

// Bind pings db on start and closes it on stop.
func Bind(lc fx.Lifecycle, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return nil
}
