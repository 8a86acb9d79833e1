package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccps_backend/internal/feature/threads/domain/entity"
	"ccps_backend/internal/feature/threads/usecase"
	"ccps_backend/internal/platform/db/dbtest"
)

func setupRepo(t *testing.T) *threadGorm {
	t.Helper()
	return NewThreadGorm(dbtest.Open(t, &entity.Thread{}, &entity.Comment{}))
}

func TestThreadGorm_CommentsPreloaded(t *testing.T) {
	t.Parallel()

	r := setupRepo(t)
	ctx := context.Background()

	th := &entity.Thread{Title: "Interview tips", Text: "Share yours", AuthorID: 1}
	require.NoError(t, r.Create(ctx, th))
	require.NoError(t, r.AddComment(ctx, &entity.Comment{ThreadID: th.ID, Text: "first", AuthorID: 2}))
	require.NoError(t, r.AddComment(ctx, &entity.Comment{ThreadID: th.ID, Text: "second", AuthorID: 3}))
	require.NoError(t, r.Create(ctx, &entity.Thread{Title: "Empty", Text: "x", AuthorID: 2}))

	all, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Empty", all[0].Title, "newest first")
	require.Len(t, all[1].Comments, 2)
	assert.Equal(t, "first", all[1].Comments[0].Text)
}

func TestThreadGorm_CommentOnMissingThread(t *testing.T) {
	t.Parallel()

	r := setupRepo(t)
	err := r.AddComment(context.Background(), &entity.Comment{ThreadID: 99, Text: "hello", AuthorID: 1})
	assert.ErrorIs(t, err, usecase.ErrThreadNotFound)
}

func TestThreadGorm_FindCommentScopedToThread(t *testing.T) {
	t.Parallel()

	r := setupRepo(t)
	ctx := context.Background()

	a := &entity.Thread{Title: "A", Text: "a", AuthorID: 1}
	b := &entity.Thread{Title: "B", Text: "b", AuthorID: 1}
	require.NoError(t, r.Create(ctx, a))
	require.NoError(t, r.Create(ctx, b))
	c := &entity.Comment{ThreadID: a.ID, Text: "on a", AuthorID: 2}
	require.NoError(t, r.AddComment(ctx, c))

	_, err := r.FindComment(ctx, b.ID, c.ID)
	assert.ErrorIs(t, err, usecase.ErrCommentNotFound)

	got, err := r.FindComment(ctx, a.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, uint(2), got.AuthorID)

	require.NoError(t, r.DeleteComment(ctx, c.ID))
	assert.ErrorIs(t, r.DeleteComment(ctx, c.ID), usecase.ErrCommentNotFound)
}

func TestThreadGorm_DeleteRemovesComments(t *testing.T) {
	t.Parallel()

	r := setupRepo(t)
	ctx := context.Background()

	th := &entity.Thread{Title: "A", Text: "a", AuthorID: 1}
	require.NoError(t, r.Create(ctx, th))
	c := &entity.Comment{ThreadID: th.ID, Text: "reply", AuthorID: 2}
	require.NoError(t, r.AddComment(ctx, c))

	require.NoError(t, r.Delete(ctx, th.ID))
	_, err := r.FindByID(ctx, th.ID)
	assert.ErrorIs(t, err, usecase.ErrThreadNotFound)
	_, err = r.FindComment(ctx, th.ID, c.ID)
	assert.ErrorIs(t, err, usecase.ErrCommentNotFound)
	assert.ErrorIs(t, r.Delete(ctx, th.ID), usecase.ErrThreadNotFound)
}
