// Package adapters provides the gorm-backed forum store.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"ccps_backend/internal/feature/threads/domain/entity"
	"ccps_backend/internal/feature/threads/usecase"
	"ccps_backend/internal/platform/db"
)

type threadGorm struct {
	db *gorm.DB
}

var _ usecase.ThreadRepository = (*threadGorm)(nil)

// NewThreadGorm creates the forum store.
func NewThreadGorm(db *gorm.DB) *threadGorm {
	return &threadGorm{db: db}
}

func (r *threadGorm) withComments(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Comments", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at ASC, id ASC")
	})
}

func (r *threadGorm) List(ctx context.Context) ([]entity.Thread, error) {
	var out []entity.Thread
	if err := r.withComments(ctx).Order("created_at DESC, id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *threadGorm) FindByID(ctx context.Context, id uint) (*entity.Thread, error) {
	var t entity.Thread
	if err := r.withComments(ctx).First(&t, id).Error; err != nil {
		if db.IsNotFound(err) {
			return nil, usecase.ErrThreadNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *threadGorm) Create(ctx context.Context, t *entity.Thread) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *threadGorm) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("thread_id = ?", id).Delete(&entity.Comment{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&entity.Thread{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return usecase.ErrThreadNotFound
		}
		return nil
	})
}

// AddComment checks the thread inside the insert's transaction, so a comment
// cannot land on a thread deleted in between.
func (r *threadGorm) AddComment(ctx context.Context, c *entity.Comment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&entity.Thread{}).Where("id = ?", c.ThreadID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return usecase.ErrThreadNotFound
		}
		return tx.Create(c).Error
	})
}

func (r *threadGorm) FindComment(ctx context.Context, threadID, commentID uint) (*entity.Comment, error) {
	var c entity.Comment
	err := r.db.WithContext(ctx).
		Where("id = ? AND thread_id = ?", commentID, threadID).
		First(&c).Error
	if err != nil {
		if db.IsNotFound(err) {
			return nil, usecase.ErrCommentNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *threadGorm) DeleteComment(ctx context.Context, commentID uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Comment{}, commentID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrCommentNotFound
	}
	return nil
}
