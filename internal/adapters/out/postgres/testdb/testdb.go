// Package testdb opens migrated in-memory databases for tests.
package testdb

import (
	"testing"

	"hyperlocal/internal/adapters/out/postgres"
	"hyperlocal/internal/pkg/logging"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewSQLite returns a fresh migrated in-memory database that is closed when t ends.
func NewSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := postgres.OpenSQLite(":memory:", logging.Discard(), false)
	require.NoError(t, err)
	require.NoError(t, postgres.AutoMigrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
