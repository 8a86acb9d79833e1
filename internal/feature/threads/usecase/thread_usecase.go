package usecase

import (
	"context"
	"strings"

	authentity "ccps_backend/internal/feature/auth/domain/entity"
	"ccps_backend/internal/feature/threads/domain/entity"
	"ccps_backend/internal/platform/authz"
)

// ThreadRepository abstracts forum storage. Threads are returned with their comments.
type ThreadRepository interface {
	List(ctx context.Context) ([]entity.Thread, error)
	FindByID(ctx context.Context, id uint) (*entity.Thread, error)
	Create(ctx context.Context, t *entity.Thread) error
	Delete(ctx context.Context, id uint) error

	// AddComment inserts c. A missing thread yields ErrThreadNotFound.
	AddComment(ctx context.Context, c *entity.Comment) error
	// FindComment returns the comment only if it belongs to threadID.
	FindComment(ctx context.Context, threadID, commentID uint) (*entity.Comment, error)
	DeleteComment(ctx context.Context, commentID uint) error
}

// PostInput is the body of a new thread or comment.
type PostInput struct {
	Title   string
	Text    string
	FileURL string
}

type threadUsecase struct {
	threads ThreadRepository
}

// NewThreadUsecase creates the forum usecase.
func NewThreadUsecase(threads ThreadRepository) *threadUsecase {
	return &threadUsecase{threads: threads}
}

func (u *threadUsecase) List(ctx context.Context) ([]entity.Thread, error) {
	return u.threads.List(ctx)
}

func (u *threadUsecase) Create(ctx context.Context, actor authz.Identity, in PostInput) (*entity.Thread, error) {
	title, text := strings.TrimSpace(in.Title), strings.TrimSpace(in.Text)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if text == "" {
		return nil, ErrEmptyText
	}
	t := &entity.Thread{
		Title:      title,
		Text:       text,
		FileURL:    strings.TrimSpace(in.FileURL),
		AuthorID:   actor.UserID,
		AuthorName: authorName(actor),
		Comments:   []entity.Comment{},
	}
	if err := u.threads.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Comment replies to threadID, which must exist.
func (u *threadUsecase) Comment(ctx context.Context, actor authz.Identity, threadID uint, in PostInput) (*entity.Comment, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if _, err := u.threads.FindByID(ctx, threadID); err != nil {
		return nil, err
	}
	c := &entity.Comment{
		ThreadID:   threadID,
		Text:       text,
		FileURL:    strings.TrimSpace(in.FileURL),
		AuthorID:   actor.UserID,
		AuthorName: authorName(actor),
	}
	if err := u.threads.AddComment(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes a thread and its comments. Author or admin only.
func (u *threadUsecase) Delete(ctx context.Context, actor authz.Identity, id uint) error {
	t, err := u.threads.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := authz.RequireOwnerOrRole(actor, t, authentity.RoleAdmin); err != nil {
		return err
	}
	return u.threads.Delete(ctx, id)
}

// DeleteComment removes one comment. Author or admin only.
func (u *threadUsecase) DeleteComment(ctx context.Context, actor authz.Identity, threadID, commentID uint) error {
	c, err := u.threads.FindComment(ctx, threadID, commentID)
	if err != nil {
		return err
	}
	if err := authz.RequireOwnerOrRole(actor, c, authentity.RoleAdmin); err != nil {
		return err
	}
	return u.threads.DeleteComment(ctx, commentID)
}

func authorName(actor authz.Identity) string {
	if actor.User != nil {
		return actor.User.Name
	}
	return ""
}
