package di

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	authadapters "ccps_backend/internal/feature/auth/adapters"
	authusecase "ccps_backend/internal/feature/auth/usecase"
	jwtmw "ccps_backend/internal/platform/jwt"
	"ccps_backend/internal/platform/session"
)

// revocationSweepInterval is how often expired rows leave the SQL revocation table.
const revocationSweepInterval = 15 * time.Minute

// RevocationStore is written by logout and read by the auth middleware.
type RevocationStore interface {
	authusecase.TokenRevoker
	jwtmw.RevocationChecker
}

// NewRevocationStore returns the Redis-backed store when Redis is available
// and falls back to the SQL table otherwise.
func NewRevocationStore(rdb *redis.Client, db *gorm.DB) RevocationStore {
	if rdb != nil {
		return session.NewRevocationRedis(rdb, "session")
	}
	return authadapters.NewRevocationGorm(db)
}

// expiredSweeper is implemented by stores whose entries do not expire on their own.
type expiredSweeper interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// sweepRevocations purges expired entries until ctx is done. Redis keys carry
// their own TTL, so only the SQL store needs this.
func sweepRevocations(ctx context.Context, store RevocationStore, every time.Duration) {
	s, ok := store.(expiredSweeper)
	if !ok {
		return
	}
	go func() {
		t := time.NewTicker(every)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				n, err := s.DeleteExpired(ctx)
				if err != nil {
					slog.Warn("revocation sweep failed", "error", err)
					continue
				}
				if n > 0 {
					slog.Info("revocation sweep", "deleted", n)
				}
			}
		}
	}()
}
