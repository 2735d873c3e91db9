package cmd

import (
	"log/slog"

	"hyperlocal/internal/adapters/out/postgres"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// OpenDatabase connects to the configured driver and migrates the schema.
func OpenDatabase(cfg Config, log *slog.Logger) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case DriverSQLite:
		db, err = postgres.OpenSQLite(cfg.SQLitePath, log, cfg.DBDebug)
	default:
		db, err = postgres.OpenPostgres(cfg.DSN(), postgres.PoolConfig{
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.DBConnMaxLifetime,
		}, log, cfg.DBDebug)
	}
	if err != nil {
		return nil, err
	}

	if err := postgres.AutoMigrate(db); err != nil {
		CloseDatabase(db, log)
		return nil, err
	}
	return db, nil
}

func CloseDatabase(db *gorm.DB, log *slog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("database handle unavailable", "error", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error("close database", "error", errors.WithStack(err))
	}
}
