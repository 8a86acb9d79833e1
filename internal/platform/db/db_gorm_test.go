package db

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBuildDSN_Postgres(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Driver:   DriverPostgres,
		Host:     "localhost",
		Port:     "5432",
		User:     "ccps",
		Password: "secret",
		Name:     "ccps",
		SSLMode:  "disable",
	}

	expected := "host=localhost user=ccps password=secret dbname=ccps port=5432 sslmode=disable TimeZone=UTC"
	assert.Equal(t, expected, BuildDSN(cfg))
}

func TestBuildDSN_SQLite(t *testing.T) {
	t.Parallel()

	cfg := Config{Driver: DriverSQLite, Path: ":memory:", Host: "ignored"}
	assert.Equal(t, ":memory:", BuildDSN(cfg))
}

func TestConnectWithRetry_SuccessOnFirstTry(t *testing.T) {
	t.Parallel()

	mockDB := &gorm.DB{}
	opener := func(dsn string) (*gorm.DB, error) {
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", 5*time.Second, opener)

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
}

func TestConnectWithRetry_RetriesOnFailure(t *testing.T) {
	// Not parallel: retryInterval is package state.
	prev := retryInterval
	retryInterval = 10 * time.Millisecond
	t.Cleanup(func() { retryInterval = prev })

	mockDB := &gorm.DB{}
	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		if attempts < 3 {
			return nil, errors.New("connection refused")
		}
		return mockDB, nil
	}

	db, err := ConnectWithRetry("test-dsn", time.Second, opener)

	require.NoError(t, err)
	assert.Same(t, mockDB, db)
	assert.Equal(t, 3, attempts)
}

func TestConnectWithRetry_TimeoutAfterRetries(t *testing.T) {
	prev := retryInterval
	retryInterval = 10 * time.Millisecond
	t.Cleanup(func() { retryInterval = prev })

	attempts := 0
	opener := func(dsn string) (*gorm.DB, error) {
		attempts++
		return nil, errors.New("connection refused")
	}

	_, err := ConnectWithRetry("test-dsn", 30*time.Millisecond, opener)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Positive(t, attempts)
}

type migrated struct {
	ID   uint   `gorm:"primaryKey"`
	Code string `gorm:"uniqueIndex"`
}

func TestOpen_SQLiteMigrates(t *testing.T) {
	t.Parallel()

	db, err := Open(Config{Driver: DriverSQLite, Path: ":memory:", Migrate: true}, &migrated{})
	require.NoError(t, err)

	assert.True(t, db.Migrator().HasTable(&migrated{}))
}
