// Package adapters provides the gorm-backed saved-job store.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"ccps_backend/internal/feature/savedjobs/domain/entity"
	"ccps_backend/internal/feature/savedjobs/usecase"
	"ccps_backend/internal/platform/db"
)

type savedJobGorm struct {
	db *gorm.DB
}

var _ usecase.SavedJobRepository = (*savedJobGorm)(nil)

// NewSavedJobGorm creates the saved-job store.
func NewSavedJobGorm(db *gorm.DB) *savedJobGorm {
	return &savedJobGorm{db: db}
}

func (r *savedJobGorm) Create(ctx context.Context, s *entity.SavedJob) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return usecase.ErrAlreadySaved
		}
		return err
	}
	return nil
}

func (r *savedJobGorm) ListByUser(ctx context.Context, userID uint) ([]entity.SavedJob, error) {
	var saved []entity.SavedJob
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&saved).Error
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (r *savedJobGorm) Delete(ctx context.Context, userID, jobID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND job_id = ?", userID, jobID).
		Delete(&entity.SavedJob{})
	return res.RowsAffected > 0, res.Error
}
