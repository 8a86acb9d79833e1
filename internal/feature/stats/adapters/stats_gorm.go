// Package adapters runs the dashboard aggregates with gorm.
package adapters

import (
	"context"

	"gorm.io/gorm"

	appentity "ccps_backend/internal/feature/applications/domain/entity"
	authentity "ccps_backend/internal/feature/auth/domain/entity"
	jobentity "ccps_backend/internal/feature/jobs/domain/entity"
	"ccps_backend/internal/feature/stats/domain/entity"
	"ccps_backend/internal/feature/stats/usecase"
)

type statsGorm struct {
	db *gorm.DB
}

var _ usecase.StatsRepository = (*statsGorm)(nil)

// NewStatsGorm creates the statistics store.
func NewStatsGorm(db *gorm.DB) *statsGorm {
	return &statsGorm{db: db}
}

func (r *statsGorm) CountDistinctCompanies(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&jobentity.Job{}).Distinct("company").Count(&n).Error
	return n, err
}

func (r *statsGorm) CountPlacedStudents(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&appentity.Application{}).
		Where("status = ?", appentity.StatusAccepted).
		Distinct("student_id").
		Count(&n).Error
	return n, err
}

func (r *statsGorm) TopHiringCompanies(ctx context.Context, limit int) ([]entity.CompanyCount, error) {
	var rows []struct {
		Company string
		Hires   int64
	}
	err := r.db.WithContext(ctx).
		Model(&appentity.Application{}).
		Select("jobs.company AS company, COUNT(*) AS hires").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.status = ?", appentity.StatusAccepted).
		Group("jobs.company").
		Order("hires DESC, company ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]entity.CompanyCount, len(rows))
	for i, row := range rows {
		out[i] = entity.CompanyCount{Company: row.Company, Count: row.Hires}
	}
	return out, nil
}

// PlacedByBatch counts placed students per graduating batch. Students without a
// profile have no batch and are left out.
func (r *statsGorm) PlacedByBatch(ctx context.Context) (map[int]int64, error) {
	var rows []struct {
		Batch  int
		Placed int64
	}
	err := r.db.WithContext(ctx).
		Model(&appentity.Application{}).
		Select("student_profiles.batch AS batch, COUNT(DISTINCT applications.student_id) AS placed").
		Joins("JOIN student_profiles ON student_profiles.user_id = applications.student_id").
		Where("applications.status = ?", appentity.StatusAccepted).
		Group("student_profiles.batch").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[int]int64, len(rows))
	for _, row := range rows {
		out[row.Batch] = row.Placed
	}
	return out, nil
}

func (r *statsGorm) UsersByRole(ctx context.Context) (map[string]int64, error) {
	return r.groupCount(ctx, &authentity.User{}, "role")
}

func (r *statsGorm) JobsByType(ctx context.Context) (map[string]int64, error) {
	return r.groupCount(ctx, &jobentity.Job{}, "type")
}

func (r *statsGorm) ApplicationsByStatus(ctx context.Context) (map[string]int64, error) {
	return r.groupCount(ctx, &appentity.Application{}, "status")
}

func (r *statsGorm) groupCount(ctx context.Context, model any, column string) (map[string]int64, error) {
	var rows []struct {
		Bucket string
		N      int64
	}
	err := r.db.WithContext(ctx).
		Model(model).
		Select(column + " AS bucket, COUNT(*) AS n").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Bucket] = row.N
	}
	return out, nil
}
