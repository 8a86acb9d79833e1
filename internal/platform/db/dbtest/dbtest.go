// Package dbtest opens throwaway SQLite databases for repository tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"ccps_backend/internal/platform/db"
)

// Open returns an isolated in-memory database with models migrated.
// The connection is closed when the test ends.
func Open(t testing.TB, models ...any) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(db.Config{Driver: db.DriverSQLite, Path: ":memory:", Migrate: true}, models...)
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return gdb
}
