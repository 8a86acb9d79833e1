package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"wrapped gorm translated", fmt.Errorf("create: %w", gorm.ErrDuplicatedKey), true},
		{"postgres unique violation", &pgconn.PgError{Code: "23505"}, true},
		{"postgres other violation", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite raw", errors.New("UNIQUE constraint failed: saved_jobs.user_id, saved_jobs.job_id"), true},
		{"not found", gorm.ErrRecordNotFound, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsDuplicateKey(tt.err))
		})
	}
}

func TestIsDuplicateKey_SQLiteIndex(t *testing.T) {
	t.Parallel()

	db, err := Open(Config{Driver: DriverSQLite, Path: ":memory:", Migrate: true}, &migrated{})
	require.NoError(t, err)

	require.NoError(t, db.Create(&migrated{Code: "A"}).Error)
	err = db.Create(&migrated{Code: "A"}).Error

	assert.True(t, IsDuplicateKey(err), "got %v", err)
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, IsNotFound(fmt.Errorf("find: %w", gorm.ErrRecordNotFound)))
	assert.False(t, IsNotFound(errors.New("boom")))
}
