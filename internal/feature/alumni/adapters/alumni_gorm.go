// Package adapters provides the gorm-backed alumni directory.
package adapters

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ccps_backend/internal/feature/alumni/domain/entity"
	"ccps_backend/internal/feature/alumni/usecase"
	"ccps_backend/internal/platform/db"
)

type alumniGorm struct {
	db *gorm.DB
}

var _ usecase.AlumniRepository = (*alumniGorm)(nil)

// NewAlumniGorm creates the alumni store.
func NewAlumniGorm(db *gorm.DB) *alumniGorm {
	return &alumniGorm{db: db}
}

func (r *alumniGorm) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Jobs", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id ASC")
	}).Order("name ASC, id ASC")
}

func (r *alumniGorm) List(ctx context.Context) ([]entity.Alumni, error) {
	var out []entity.Alumni
	if err := r.base(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func contains(s string) string {
	return "%" + strings.ToLower(likeEscaper.Replace(s)) + "%"
}

func (r *alumniGorm) Search(ctx context.Context, q usecase.Query) ([]entity.Alumni, error) {
	tx := r.base(ctx)
	switch q.Field {
	case usecase.SearchByJobID:
		tx = tx.Where("id IN (?)", r.db.Model(&entity.AlumniJob{}).Select("alumni_id").Where("job_id = ?", q.Text))
	case usecase.SearchByRole:
		tx = tx.Where("id IN (?)", r.db.Model(&entity.AlumniJob{}).Select("alumni_id").Where(`LOWER(role) LIKE ? ESCAPE '\'`, contains(q.Text)))
	case usecase.SearchByCompany:
		tx = tx.Where(`LOWER(company) LIKE ? ESCAPE '\'`, contains(q.Text))
	case usecase.SearchByName:
		tx = tx.Where(`LOWER(name) LIKE ? ESCAPE '\'`, contains(q.Text))
	case usecase.SearchByBatch:
		tx = tx.Where("batch = ?", q.Batch)
	}
	var out []entity.Alumni
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *alumniGorm) FindByID(ctx context.Context, id uint) (*entity.Alumni, error) {
	var a entity.Alumni
	if err := r.base(ctx).First(&a, id).Error; err != nil {
		if db.IsNotFound(err) {
			return nil, usecase.ErrAlumniNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *alumniGorm) FindByUserID(ctx context.Context, userID uint) (*entity.Alumni, error) {
	var a entity.Alumni
	if err := r.base(ctx).Where("user_id = ?", userID).First(&a).Error; err != nil {
		if db.IsNotFound(err) {
			return nil, usecase.ErrOwnProfileNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *alumniGorm) Create(ctx context.Context, a *entity.Alumni) error {
	return translate(r.db.WithContext(ctx).Create(a).Error)
}

// Update rewrites the entry's columns and swaps in its job list in one transaction.
func (r *alumniGorm) Update(ctx context.Context, a *entity.Alumni) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(a).
			Select("Name", "Company", "LinkedIn", "InstituteID", "MobileNumber", "Email", "Batch", "UserID", "UpdatedAt").
			Omit(clause.Associations).
			Updates(a)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrAlumniNotFound
		}
		if err := tx.Where("alumni_id = ?", a.ID).Delete(&entity.AlumniJob{}).Error; err != nil {
			return err
		}
		for i := range a.Jobs {
			a.Jobs[i].ID = 0
			a.Jobs[i].AlumniID = a.ID
		}
		if len(a.Jobs) > 0 {
			return tx.Create(&a.Jobs).Error
		}
		return nil
	})
	return translate(err)
}

func (r *alumniGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("alumni_id = ?", id).Delete(&entity.AlumniJob{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&entity.Alumni{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrAlumniNotFound
		}
		return nil
	})
}

func translate(err error) error {
	if db.IsDuplicateKey(err) {
		return usecase.ErrUserAlreadyLinked
	}
	return err
}
