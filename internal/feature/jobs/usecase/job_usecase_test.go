package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authentity "ccps_backend/internal/feature/auth/domain/entity"
	"ccps_backend/internal/feature/jobs/domain/entity"
	"ccps_backend/internal/platform/authz"
)

type mockJobRepository struct {
	ListFunc        func(ctx context.Context) ([]entity.Job, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*entity.Job, error)
	CreateFunc      func(ctx context.Context, job *entity.Job) error
	UpdateFunc      func(ctx context.Context, job *entity.Job) error
	DeleteFunc      func(ctx context.Context, id uint) error
	VoteFunc        func(ctx context.Context, jobID, userID uint, value int) (int, error)
	VotesByUserFunc func(ctx context.Context, userID uint) (map[uint]int, error)
}

func (m *mockJobRepository) List(ctx context.Context) ([]entity.Job, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockJobRepository) FindByID(ctx context.Context, id uint) (*entity.Job, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrJobNotFound
}

func (m *mockJobRepository) Create(ctx context.Context, job *entity.Job) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, job)
	}
	return nil
}

func (m *mockJobRepository) Update(ctx context.Context, job *entity.Job) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, job)
	}
	return nil
}

func (m *mockJobRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockJobRepository) Vote(ctx context.Context, jobID, userID uint, value int) (int, error) {
	if m.VoteFunc != nil {
		return m.VoteFunc(ctx, jobID, userID, value)
	}
	return value, nil
}

func (m *mockJobRepository) VotesByUser(ctx context.Context, userID uint) (map[uint]int, error) {
	if m.VotesByUserFunc != nil {
		return m.VotesByUserFunc(ctx, userID)
	}
	return nil, nil
}

var (
	admin   = authz.Identity{UserID: 1, Role: authentity.RoleAdmin, User: &authentity.User{ID: 1, Name: "Placement Cell"}}
	student = authz.Identity{UserID: 2, Role: authentity.RoleStudent}
	alumni  = authz.Identity{UserID: 3, Role: authentity.RoleAlumni}
)

func ptr[T any](v T) *T { return &v }

func validInput() JobInput {
	onCampus := entity.JobTypeOnCampus
	return JobInput{Title: ptr("SDE"), Company: ptr("Acme"), Type: &onCampus}
}

func TestJobUsecase_Create(t *testing.T) {
	t.Parallel()

	t.Run("admin creates", func(t *testing.T) {
		t.Parallel()

		var stored *entity.Job
		uc := NewJobUsecase(&mockJobRepository{CreateFunc: func(_ context.Context, j *entity.Job) error {
			j.ID = 10
			stored = j
			return nil
		}})

		job, err := uc.Create(context.Background(), admin, validInput())
		require.NoError(t, err)
		assert.Equal(t, uint(10), job.ID)
		assert.Equal(t, uint(1), stored.CreatedBy)
		assert.Equal(t, "Placement Cell", stored.Author)
	})

	t.Run("non-admin is forbidden and nothing is written", func(t *testing.T) {
		t.Parallel()

		for _, actor := range []authz.Identity{student, alumni} {
			uc := NewJobUsecase(&mockJobRepository{CreateFunc: func(context.Context, *entity.Job) error {
				t.Error("store must not be called")
				return nil
			}})
			_, err := uc.Create(context.Background(), actor, validInput())
			assert.ErrorIs(t, err, authz.ErrForbidden)
		}
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()

		uc := NewJobUsecase(&mockJobRepository{})

		bad := validInput()
		bad.Type = ptr(entity.JobType("remote"))
		_, err := uc.Create(context.Background(), admin, bad)
		assert.ErrorIs(t, err, ErrInvalidJobType)

		late := validInput()
		late.Deadline = ptr(time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC))
		late.Expiry = ptr(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
		_, err = uc.Create(context.Background(), admin, late)
		assert.ErrorIs(t, err, ErrDeadlineAfterExpiry)
	})
}

func TestJobUsecase_Update(t *testing.T) {
	t.Parallel()

	existing := func(context.Context, uint) (*entity.Job, error) {
		return &entity.Job{ID: 4, Title: "Old", Company: "Acme", Type: entity.JobTypeOffCampus, Score: 7}, nil
	}

	var updated *entity.Job
	uc := NewJobUsecase(&mockJobRepository{
		FindByIDFunc: existing,
		UpdateFunc:   func(_ context.Context, j *entity.Job) error { updated = j; return nil },
	})

	job, err := uc.Update(context.Background(), admin, 4, JobInput{Title: ptr("New")})
	require.NoError(t, err)
	assert.Equal(t, "New", job.Title)
	assert.Equal(t, "Acme", updated.Company, "unset fields are kept")
	assert.Equal(t, 7, updated.Score)

	_, err = uc.Update(context.Background(), student, 4, JobInput{Title: ptr("Hijack")})
	assert.ErrorIs(t, err, authz.ErrForbidden)

	missing := NewJobUsecase(&mockJobRepository{})
	_, err = missing.Update(context.Background(), admin, 99, JobInput{Title: ptr("x")})
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobUsecase_Delete(t *testing.T) {
	t.Parallel()

	deleted := uint(0)
	uc := NewJobUsecase(&mockJobRepository{DeleteFunc: func(_ context.Context, id uint) error {
		deleted = id
		return nil
	}})

	assert.ErrorIs(t, uc.Delete(context.Background(), student, 5), authz.ErrForbidden)
	assert.Zero(t, deleted)
	require.NoError(t, uc.Delete(context.Background(), admin, 5))
	assert.Equal(t, uint(5), deleted)
}

func TestJobUsecase_Vote(t *testing.T) {
	t.Parallel()

	repo := &mockJobRepository{
		FindByIDFunc: func(_ context.Context, id uint) (*entity.Job, error) {
			return &entity.Job{ID: id, Score: 1}, nil
		},
	}
	uc := NewJobUsecase(repo)

	l, err := uc.Vote(context.Background(), student, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, l.MyVote)
	assert.Equal(t, 1, l.Job.Score)

	_, err = uc.Vote(context.Background(), admin, 3, 1)
	assert.ErrorIs(t, err, authz.ErrForbidden, "only students vote")

	_, err = uc.Vote(context.Background(), student, 3, 2)
	assert.ErrorIs(t, err, ErrInvalidVote)

	repo.VoteFunc = func(context.Context, uint, uint, int) (int, error) { return 0, ErrJobNotFound }
	_, err = uc.Vote(context.Background(), student, 99, -1)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobUsecase_List_VotesOnlyForStudents(t *testing.T) {
	t.Parallel()

	votesCalled := 0
	uc := NewJobUsecase(&mockJobRepository{
		ListFunc: func(context.Context) ([]entity.Job, error) {
			return []entity.Job{{ID: 1}, {ID: 2}}, nil
		},
		VotesByUserFunc: func(_ context.Context, userID uint) (map[uint]int, error) {
			votesCalled++
			return map[uint]int{2: -1}, nil
		},
	})

	ls, err := uc.List(context.Background(), student)
	require.NoError(t, err)
	require.Len(t, ls, 2)
	assert.Equal(t, 0, ls[0].MyVote)
	assert.Equal(t, -1, ls[1].MyVote)

	_, err = uc.List(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, 1, votesCalled)
}
