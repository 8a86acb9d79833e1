package adapters

import (
	"testing"

	"gorm.io/gorm"

	"ccps_backend/internal/feature/auth/domain/entity"
	"ccps_backend/internal/platform/db/dbtest"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return dbtest.Open(t, &entity.User{}, &entity.RevokedToken{})
}
