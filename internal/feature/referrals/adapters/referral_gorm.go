// Package adapters provides the gorm-backed referral store.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"ccps_backend/internal/feature/referrals/domain/entity"
	"ccps_backend/internal/feature/referrals/usecase"
	"ccps_backend/internal/platform/db"
)

type referralGorm struct {
	db *gorm.DB
}

var _ usecase.ReferralRepository = (*referralGorm)(nil)

// NewReferralGorm creates the referral store.
func NewReferralGorm(db *gorm.DB) *referralGorm {
	return &referralGorm{db: db}
}

func (r *referralGorm) Create(ctx context.Context, ref *entity.Referral) error {
	return r.db.WithContext(ctx).Create(ref).Error
}

func (r *referralGorm) FindByID(ctx context.Context, id uint) (*entity.Referral, error) {
	var ref entity.Referral
	if err := r.db.WithContext(ctx).First(&ref, id).Error; err != nil {
		if db.IsNotFound(err) {
			return nil, usecase.ErrReferralNotFound
		}
		return nil, err
	}
	return &ref, nil
}

func (r *referralGorm) List(ctx context.Context, studentID uint) ([]entity.Referral, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
	if studentID != 0 {
		q = q.Where("student_id = ?", studentID)
	}
	var out []entity.Referral
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Provide only matches a pending row, so two alumni racing cannot both provide.
func (r *referralGorm) Provide(ctx context.Context, ref *entity.Referral) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Referral{}).
		Where("id = ? AND status = ?", ref.ID, entity.StatusPending).
		Updates(map[string]any{
			"referral_link": ref.ReferralLink,
			"status":        ref.Status,
			"provided_by":   ref.ProvidedBy,
			"alumni_email":  ref.AlumniEmail,
		})
	return res.RowsAffected > 0, res.Error
}

func (r *referralGorm) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Referral{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrReferralNotFound
	}
	return nil
}
