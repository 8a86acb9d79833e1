package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ccps_backend/internal/feature/auth/domain/entity"
)

// RevocationGorm keeps revoked token ids in the revoked_tokens table.
// It stands in for the Redis store when no Redis host is configured.
type RevocationGorm struct {
	db  *gorm.DB
	now func() time.Time
}

// NewRevocationGorm creates a RevocationGorm.
func NewRevocationGorm(db *gorm.DB) *RevocationGorm {
	return &RevocationGorm{db: db, now: time.Now}
}

// Revoke records jti. Revoking the same token twice is not an error.
func (r *RevocationGorm) Revoke(ctx context.Context, jti string, userID uint, expiresAt time.Time) error {
	if !expiresAt.After(r.now()) {
		return nil
	}
	row := entity.RevokedToken{JTI: jti, UserID: userID, ExpiresAt: expiresAt, RevokedAt: r.now()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
}

// IsRevoked reports whether jti has an unexpired revocation row.
func (r *RevocationGorm) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.RevokedToken{}).
		Where("jti = ? AND expires_at > ?", jti, r.now()).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteExpired removes rows whose token has expired and returns how many were removed.
func (r *RevocationGorm) DeleteExpired(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("expires_at <= ?", r.now()).Delete(&entity.RevokedToken{})
	return res.RowsAffected, res.Error
}
