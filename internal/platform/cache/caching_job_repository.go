// Package cache はリポジトリインターフェースのキャッシュ実装を提供します。
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"ccps_backend/internal/feature/jobs/domain/entity"
	"ccps_backend/internal/feature/jobs/usecase"
)

// CachingJobRepository は JobRepository を Redis キャッシュでデコレートします。
// 求人一覧と個別の求人をキャッシュし、書き込みのたびに影響するキーを無効化します。
// ユーザーごとの投票はキャッシュしません。
type CachingJobRepository struct {
	inner     usecase.JobRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.JobRepository = (*CachingJobRepository)(nil)

// NewCachingJobRepository は inner をデコレートします。client が nil ならキャッシュしません。
// ttl=0 の場合は 5分にフォールバックします。namespace が空なら "jobs" を使います。
func NewCachingJobRepository(rdb *redis.Client, ttl time.Duration, inner usecase.JobRepository, namespace string) *CachingJobRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "jobs"
	}
	return &CachingJobRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

func (c *CachingJobRepository) listKey() string {
	return c.namespace + ":list"
}

func (c *CachingJobRepository) jobKey(id uint) string {
	return fmt.Sprintf("%s:id:%d", c.namespace, id)
}

// List はキャッシュ済みの求人一覧を返し、ミス時は inner から読み込みます。
func (c *CachingJobRepository) List(ctx context.Context) ([]entity.Job, error) {
	if c.rdb == nil {
		return c.inner.List(ctx)
	}
	var out []entity.Job
	if c.get(ctx, c.listKey(), &out) {
		return out, nil
	}
	out, err := c.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, c.listKey(), out)
	return out, nil
}

// FindByID はキャッシュ済みの求人を返し、ミス時は inner から読み込みます。
// 見つからなかった結果はキャッシュしません。
func (c *CachingJobRepository) FindByID(ctx context.Context, id uint) (*entity.Job, error) {
	if c.rdb == nil {
		return c.inner.FindByID(ctx, id)
	}
	var job entity.Job
	if c.get(ctx, c.jobKey(id), &job) {
		return &job, nil
	}
	out, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(ctx, c.jobKey(id), out)
	return out, nil
}

func (c *CachingJobRepository) Create(ctx context.Context, job *entity.Job) error {
	if err := c.inner.Create(ctx, job); err != nil {
		return err
	}
	c.invalidate(ctx, job.ID)
	return nil
}

func (c *CachingJobRepository) Update(ctx context.Context, job *entity.Job) error {
	if err := c.inner.Update(ctx, job); err != nil {
		return err
	}
	c.invalidate(ctx, job.ID)
	return nil
}

func (c *CachingJobRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

// Vote は求人のスコアを変えるため、キャッシュを破棄します。
func (c *CachingJobRepository) Vote(ctx context.Context, jobID, userID uint, value int) (int, error) {
	score, err := c.inner.Vote(ctx, jobID, userID, value)
	if err != nil {
		return 0, err
	}
	c.invalidate(ctx, jobID)
	return score, nil
}

func (c *CachingJobRepository) VotesByUser(ctx context.Context, userID uint) (map[uint]int, error) {
	return c.inner.VotesByUser(ctx, userID)
}

// get は key の値を dst に読み込みます。壊れていたら削除してミス扱い
func (c *CachingJobRepository) get(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// set は v を key に保存します（ベストエフォート）。
func (c *CachingJobRepository) set(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		slog.Warn("job cache write failed", "key", key, "error", err)
	}
}

func (c *CachingJobRepository) invalidate(ctx context.Context, id uint) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, c.listKey(), c.jobKey(id)).Err(); err != nil {
		slog.Warn("job cache invalidation failed", "job_id", id, "error", err)
	}
}
