// Package adapters provides the gorm-backed student profile store.
package adapters

import (
	"context"

	"gorm.io/gorm"

	authentity "ccps_backend/internal/feature/auth/domain/entity"
	"ccps_backend/internal/feature/profile/domain/entity"
	"ccps_backend/internal/feature/profile/usecase"
	"ccps_backend/internal/platform/db"
)

type profileGorm struct {
	db *gorm.DB
}

var _ usecase.ProfileRepository = (*profileGorm)(nil)

// NewProfileGorm creates the profile store.
func NewProfileGorm(db *gorm.DB) *profileGorm {
	return &profileGorm{db: db}
}

func (r *profileGorm) Create(ctx context.Context, p *entity.StudentProfile) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *profileGorm) FindByUserID(ctx context.Context, userID uint) (*entity.StudentProfile, error) {
	var p entity.StudentProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		if db.IsNotFound(err) {
			return nil, usecase.ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Update writes p and, when account is non-nil, the account's name and email
// in one transaction. Neither row changes if either write fails. UserID is never written.
func (r *profileGorm) Update(ctx context.Context, p *entity.StudentProfile, account *authentity.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(p).
			Select("StudentID", "Discipline", "Program", "CGPA", "Batch", "Status", "ProfilePhotoURL", "ResumeLink", "UpdatedAt").
			Updates(p).Error
		if db.IsDuplicateKey(err) {
			return usecase.ErrStudentIDTaken
		}
		if err != nil {
			return err
		}
		if account == nil {
			return nil
		}
		err = tx.Model(account).Select("Name", "Email", "UpdatedAt").Updates(account).Error
		if db.IsDuplicateKey(err) {
			return usecase.ErrEmailTaken
		}
		return err
	})
}

func (r *profileGorm) DeleteByUserID(ctx context.Context, userID uint) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.StudentProfile{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrProfileNotFound
	}
	return nil
}

func translate(err error) error {
	if db.IsDuplicateKey(err) {
		return usecase.ErrDuplicate
	}
	return err
}
