package postgres

import (
	"database/sql"
	"log/slog"
	"time"

	"hyperlocal/internal/adapters/out/postgres/cartrepo"
	"hyperlocal/internal/adapters/out/postgres/catalogrepo"
	"hyperlocal/internal/adapters/out/postgres/contentrepo"
	"hyperlocal/internal/adapters/out/postgres/orderrepo"
	"hyperlocal/internal/adapters/out/postgres/outboxrepo"
	"hyperlocal/internal/adapters/out/postgres/settlementrepo"
	"hyperlocal/internal/adapters/out/postgres/userrepo"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PoolConfig bounds the connection pool.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// OpenPostgres connects through lib/pq and hands the pool to GORM.
func OpenPostgres(dsn string, pool PoolConfig, log *slog.Logger, debug bool) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         NewGormLogger(log, debug),
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open gorm")
	}
	return db, nil
}

// OpenSQLite opens a file or ":memory:" database. SQLite allows one writer, so the pool is
// pinned to a single connection.
func OpenSQLite(path string, log *slog.Logger, debug bool) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path+"?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         NewGormLogger(log, debug),
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open sqlite %s", path)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

// Models lists every persisted table.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&catalogrepo.StoreDTO{},
		&catalogrepo.ProductDTO{},
		&catalogrepo.VariantDTO{},
		&catalogrepo.SizeDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.LineDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.StatusHistoryDTO{},
		&outboxrepo.OutboxDTO{},
		&settlementrepo.SettlementDTO{},
		&contentrepo.BannerDTO{},
		&contentrepo.CMSEntryDTO{},
		&contentrepo.PromotionDTO{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(Models()...), "migrate schema")
}
