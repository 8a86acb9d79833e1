// Package adapters provides the gorm-backed application store.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"ccps_backend/internal/feature/applications/domain/entity"
	"ccps_backend/internal/feature/applications/usecase"
	"ccps_backend/internal/platform/db"
)

type applicantRow struct {
	entity.Application
	StudentName  string
	StudentEmail string
}

type applicationGorm struct {
	db *gorm.DB
}

var _ usecase.ApplicationRepository = (*applicationGorm)(nil)

// NewApplicationGorm creates the application store.
func NewApplicationGorm(db *gorm.DB) *applicationGorm {
	return &applicationGorm{db: db}
}

func (r *applicationGorm) Create(ctx context.Context, a *entity.Application) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if db.IsDuplicateKey(err) {
			return usecase.ErrAlreadyApplied
		}
		return err
	}
	return nil
}

func (r *applicationGorm) FindByID(ctx context.Context, id uint) (*entity.Application, error) {
	var app entity.Application
	if err := r.db.WithContext(ctx).First(&app, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &app, nil
}

func (r *applicationGorm) FindByStudentAndJob(ctx context.Context, studentID, jobID uint) (*entity.Application, error) {
	var app entity.Application
	err := r.db.WithContext(ctx).
		Where("student_id = ? AND job_id = ?", studentID, jobID).
		First(&app).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &app, nil
}

func (r *applicationGorm) ListByStudent(ctx context.Context, studentID uint) ([]entity.Application, error) {
	var apps []entity.Application
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC, id DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// Applicants joins the users table for names and emails. Applications whose
// student account is gone are dropped by the inner join.
func (r *applicationGorm) Applicants(ctx context.Context, jobID uint) ([]usecase.Applicant, error) {
	var rows []applicantRow
	err := r.db.WithContext(ctx).
		Model(&entity.Application{}).
		Select("applications.*, users.name AS student_name, users.email AS student_email").
		Joins("JOIN users ON users.id = applications.student_id").
		Where("applications.job_id = ?", jobID).
		Order("applications.created_at ASC, applications.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]usecase.Applicant, len(rows))
	for i, row := range rows {
		out[i] = usecase.Applicant{
			Application:  row.Application,
			StudentName:  row.StudentName,
			StudentEmail: row.StudentEmail,
		}
	}
	return out, nil
}

func (r *applicationGorm) DeleteByID(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&entity.Application{}, id)
	return res.RowsAffected > 0, res.Error
}

func (r *applicationGorm) DeleteByStudentAndJob(ctx context.Context, studentID, jobID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("student_id = ? AND job_id = ?", studentID, jobID).
		Delete(&entity.Application{})
	return res.RowsAffected > 0, res.Error
}

// UpdateStatus is a compare-and-set on the status column.
func (r *applicationGorm) UpdateStatus(ctx context.Context, id uint, from, to entity.Status) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.Application{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected > 0, res.Error
}

func notFound(err error) error {
	if db.IsNotFound(err) {
		return usecase.ErrApplicationNotFound
	}
	return err
}
