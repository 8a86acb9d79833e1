package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccps_backend/internal/feature/jobs/domain/entity"
	"ccps_backend/internal/feature/jobs/usecase"
)

type mockJobRepository struct {
	listFn     func(ctx context.Context) ([]entity.Job, error)
	findByIDFn func(ctx context.Context, id uint) (*entity.Job, error)
	createFn   func(ctx context.Context, job *entity.Job) error
	voteFn     func(ctx context.Context, jobID, userID uint, value int) (int, error)
	deleteFn   func(ctx context.Context, id uint) error
}

func (m *mockJobRepository) List(ctx context.Context) ([]entity.Job, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockJobRepository) FindByID(ctx context.Context, id uint) (*entity.Job, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, usecase.ErrJobNotFound
}

func (m *mockJobRepository) Create(ctx context.Context, job *entity.Job) error {
	if m.createFn != nil {
		return m.createFn(ctx, job)
	}
	return nil
}

func (m *mockJobRepository) Update(ctx context.Context, job *entity.Job) error { return nil }

func (m *mockJobRepository) Delete(ctx context.Context, id uint) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockJobRepository) Vote(ctx context.Context, jobID, userID uint, value int) (int, error) {
	if m.voteFn != nil {
		return m.voteFn(ctx, jobID, userID, value)
	}
	return value, nil
}

func (m *mockJobRepository) VotesByUser(ctx context.Context, userID uint) (map[uint]int, error) {
	return map[uint]int{1: 1}, nil
}

var testJobs = []entity.Job{
	{ID: 1, Title: "SDE Intern", Company: "Acme", Type: entity.JobTypeOnCampus, RequiredSkills: []string{"go"}},
	{ID: 2, Title: "Analyst", Company: "Globex", Type: entity.JobTypeOffCampus},
}

func TestNewCachingJobRepository_Defaults(t *testing.T) {
	t.Parallel()

	repo := NewCachingJobRepository(nil, 0, &mockJobRepository{}, "")
	assert.Equal(t, 5*time.Minute, repo.ttl)
	assert.Equal(t, "jobs", repo.namespace)

	repo = NewCachingJobRepository(nil, time.Minute, &mockJobRepository{}, "custom")
	assert.Equal(t, time.Minute, repo.ttl)
	assert.Equal(t, "custom", repo.namespace)
}

func TestCachingJobRepository_NilRedis(t *testing.T) {
	t.Parallel()

	calls := 0
	inner := &mockJobRepository{listFn: func(context.Context) ([]entity.Job, error) {
		calls++
		return testJobs, nil
	}}
	repo := NewCachingJobRepository(nil, time.Minute, inner, "jobs")

	for i := 0; i < 2; i++ {
		jobs, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.Len(t, jobs, 2)
	}
	assert.Equal(t, 2, calls, "every call reaches the store")
	require.NoError(t, repo.Create(context.Background(), &entity.Job{}))
}

func TestCachingJobRepository_List_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cached, _ := json.Marshal(testJobs)
	mock.ExpectGet("jobs:list").SetVal(string(cached))

	innerCalled := false
	inner := &mockJobRepository{listFn: func(context.Context) ([]entity.Job, error) {
		innerCalled = true
		return nil, nil
	}}

	repo := NewCachingJobRepository(rdb, 5*time.Minute, inner, "jobs")
	jobs, err := repo.List(context.Background())
	require.NoError(t, err)

	assert.False(t, innerCalled, "inner repository should not be called on cache hit")
	require.Len(t, jobs, 2)
	assert.Equal(t, []string{"go"}, jobs[0].RequiredSkills)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingJobRepository_List_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected, _ := json.Marshal(testJobs)
	mock.ExpectGet("jobs:list").RedisNil()
	mock.ExpectSet("jobs:list", expected, 5*time.Minute).SetVal("OK")

	inner := &mockJobRepository{listFn: func(context.Context) ([]entity.Job, error) { return testJobs, nil }}

	repo := NewCachingJobRepository(rdb, 5*time.Minute, inner, "jobs")
	jobs, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingJobRepository_FindByID_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	job := testJobs[0]
	expected, _ := json.Marshal(&job)
	mock.ExpectGet("jobs:id:1").SetVal("invalid json")
	mock.ExpectDel("jobs:id:1").SetVal(1)
	mock.ExpectSet("jobs:id:1", expected, 5*time.Minute).SetVal("OK")

	inner := &mockJobRepository{findByIDFn: func(context.Context, uint) (*entity.Job, error) {
		j := job
		return &j, nil
	}}

	repo := NewCachingJobRepository(rdb, 5*time.Minute, inner, "jobs")
	got, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "SDE Intern", got.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingJobRepository_FindByID_NotFoundIsNotCached(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("jobs:id:9").RedisNil()

	repo := NewCachingJobRepository(rdb, 5*time.Minute, &mockJobRepository{}, "jobs")
	_, err := repo.FindByID(context.Background(), 9)

	assert.ErrorIs(t, err, usecase.ErrJobNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingJobRepository_WritesInvalidate(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectDel("jobs:list", "jobs:id:7").SetVal(2)
	mock.ExpectDel("jobs:list", "jobs:id:3").SetVal(1)
	mock.ExpectDel("jobs:list", "jobs:id:3").SetVal(0)

	inner := &mockJobRepository{createFn: func(_ context.Context, job *entity.Job) error {
		job.ID = 7
		return nil
	}}
	repo := NewCachingJobRepository(rdb, 5*time.Minute, inner, "jobs")
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Job{Title: "New"}))
	score, err := repo.Vote(ctx, 3, 10, -1)
	require.NoError(t, err)
	assert.Equal(t, -1, score)
	require.NoError(t, repo.Delete(ctx, 3))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachingJobRepository_FailedWriteKeepsCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	storeErr := errors.New("database error")
	inner := &mockJobRepository{deleteFn: func(context.Context, uint) error { return storeErr }}
	repo := NewCachingJobRepository(rdb, 5*time.Minute, inner, "jobs")

	err := repo.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, storeErr)
	assert.NoError(t, mock.ExpectationsWereMet(), "no Redis command is issued")
}
