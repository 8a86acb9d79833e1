// Package adapters provides the gorm-backed job store.
package adapters

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"ccps_backend/internal/feature/jobs/domain/entity"
	"ccps_backend/internal/feature/jobs/usecase"
	"ccps_backend/internal/platform/db"
)

type jobGorm struct {
	db *gorm.DB
}

var _ usecase.JobRepository = (*jobGorm)(nil)

// NewJobGorm creates the job store.
func NewJobGorm(db *gorm.DB) *jobGorm {
	return &jobGorm{db: db}
}

func (r *jobGorm) List(ctx context.Context) ([]entity.Job, error) {
	var jobs []entity.Job
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (r *jobGorm) FindByID(ctx context.Context, id uint) (*entity.Job, error) {
	var job entity.Job
	if err := r.db.WithContext(ctx).First(&job, id).Error; err != nil {
		if db.IsNotFound(err) {
			return nil, usecase.ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobGorm) Create(ctx context.Context, job *entity.Job) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// Update writes the editable columns. Score is owned by Vote and never overwritten here.
func (r *jobGorm) Update(ctx context.Context, job *entity.Job) error {
	res := r.db.WithContext(ctx).Model(job).Select(
		"Title", "Company", "Description", "RequiredSkills", "Type", "Batch",
		"RelevanceScore", "Deadline", "Expiry", "ApplicationLink", "Author", "UpdatedAt",
	).Updates(job)
	return res.Error
}

func (r *jobGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&entity.Job{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrJobNotFound
		}
		return tx.Where("job_id = ?", id).Delete(&entity.Vote{}).Error
	})
}

// Vote upserts the (job, user) vote and rewrites the job's score as the sum of
// its votes. The job row is locked first so concurrent votes on one job serialize.
func (r *jobGorm) Vote(ctx context.Context, jobID, userID uint, value int) (int, error) {
	var score int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lock := tx.Model(&entity.Job{}).Where("id = ?", jobID).UpdateColumn("score", gorm.Expr("score"))
		if lock.Error != nil {
			return lock.Error
		}
		if lock.RowsAffected == 0 {
			return usecase.ErrJobNotFound
		}

		vote := entity.Vote{JobID: jobID, UserID: userID, Value: value}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "job_id"}, {Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).Create(&vote).Error; err != nil {
			return err
		}

		if err := tx.Model(&entity.Vote{}).
			Where("job_id = ?", jobID).
			Select("COALESCE(SUM(value), 0)").
			Scan(&score).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Job{}).Where("id = ?", jobID).UpdateColumn("score", score).Error
	})
	if err != nil {
		return 0, err
	}
	return score, nil
}

func (r *jobGorm) VotesByUser(ctx context.Context, userID uint) (map[uint]int, error) {
	var votes []entity.Vote
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&votes).Error; err != nil {
		return nil, err
	}
	out := make(map[uint]int, len(votes))
	for _, v := range votes {
		out[v.JobID] = v.Value
	}
	return out, nil
}
