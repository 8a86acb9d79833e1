package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccps_backend/internal/feature/applications/domain/entity"
	"ccps_backend/internal/feature/applications/usecase"
	authentity "ccps_backend/internal/feature/auth/domain/entity"
	"ccps_backend/internal/platform/db/dbtest"
)

func setupRepo(t *testing.T) (*applicationGorm, []authentity.User) {
	t.Helper()
	gdb := dbtest.Open(t, &authentity.User{}, &entity.Application{})
	users := []authentity.User{
		{Name: "Asha", Email: "asha@campus.edu", Password: "x", Role: authentity.RoleStudent},
		{Name: "Ravi", Email: "ravi@campus.edu", Password: "x", Role: authentity.RoleStudent},
	}
	require.NoError(t, gdb.Create(&users).Error)
	return NewApplicationGorm(gdb), users
}

func apply(t *testing.T, r *applicationGorm, studentID, jobID uint) *entity.Application {
	t.Helper()
	a := &entity.Application{StudentID: studentID, JobID: jobID, Resume: "https://cv", Status: entity.StatusApplied}
	require.NoError(t, r.Create(context.Background(), a))
	return a
}

func TestApplicationGorm_CreateDuplicate(t *testing.T) {
	t.Parallel()

	r, users := setupRepo(t)
	apply(t, r, users[0].ID, 7)

	err := r.Create(context.Background(), &entity.Application{StudentID: users[0].ID, JobID: 7, Status: entity.StatusApplied})
	assert.ErrorIs(t, err, usecase.ErrAlreadyApplied)

	// Another student may still apply to the same job.
	apply(t, r, users[1].ID, 7)
}

func TestApplicationGorm_Find(t *testing.T) {
	t.Parallel()

	r, users := setupRepo(t)
	ctx := context.Background()
	a := apply(t, r, users[0].ID, 7)
	apply(t, r, users[0].ID, 8)
	apply(t, r, users[1].ID, 7)

	got, err := r.FindByStudentAndJob(ctx, users[0].ID, 7)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)

	_, err = r.FindByStudentAndJob(ctx, users[1].ID, 8)
	assert.ErrorIs(t, err, usecase.ErrApplicationNotFound)

	_, err = r.FindByID(ctx, 999)
	assert.ErrorIs(t, err, usecase.ErrApplicationNotFound)

	mine, err := r.ListByStudent(ctx, users[0].ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	for _, m := range mine {
		assert.Equal(t, users[0].ID, m.StudentID)
	}
}

func TestApplicationGorm_Applicants(t *testing.T) {
	t.Parallel()

	r, users := setupRepo(t)
	apply(t, r, users[0].ID, 7)
	apply(t, r, users[1].ID, 7)
	apply(t, r, users[1].ID, 8)

	got, err := r.Applicants(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Asha", got[0].StudentName)
	assert.Equal(t, "asha@campus.edu", got[0].StudentEmail)
	assert.Equal(t, "Ravi", got[1].StudentName)
	assert.Equal(t, uint(7), got[1].JobID)
}

func TestApplicationGorm_Delete(t *testing.T) {
	t.Parallel()

	r, users := setupRepo(t)
	ctx := context.Background()
	a := apply(t, r, users[0].ID, 7)
	apply(t, r, users[1].ID, 7)
	apply(t, r, users[0].ID, 8)

	ok, err := r.DeleteByID(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.DeleteByID(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = r.DeleteByStudentAndJob(ctx, users[1].ID, 8)
	require.NoError(t, err)
	assert.False(t, ok, "users[1] never applied to job 8")

	ok, err = r.DeleteByStudentAndJob(ctx, users[1].ID, 7)
	require.NoError(t, err)
	assert.True(t, ok)

	left, err := r.ListByStudent(ctx, users[0].ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, uint(8), left[0].JobID, "other students' applications are untouched")
}

func TestApplicationGorm_UpdateStatus(t *testing.T) {
	t.Parallel()

	r, users := setupRepo(t)
	ctx := context.Background()
	a := apply(t, r, users[0].ID, 7)

	ok, err := r.UpdateStatus(ctx, a.ID, entity.StatusApplied, entity.StatusInReview)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.UpdateStatus(ctx, a.ID, entity.StatusApplied, entity.StatusInReview)
	require.NoError(t, err)
	assert.False(t, ok, "stale from-status must not match")

	got, err := r.FindByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusInReview, got.Status)
}
