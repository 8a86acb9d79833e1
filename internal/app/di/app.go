// Package di wires adapters, usecases and handlers into a ready router.
package di

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"ccps_backend/internal/app/router"
	alumniadapters "ccps_backend/internal/feature/alumni/adapters"
	alumnihandler "ccps_backend/internal/feature/alumni/transport/handler"
	alumniusecase "ccps_backend/internal/feature/alumni/usecase"
	appadapters "ccps_backend/internal/feature/applications/adapters"
	apphandler "ccps_backend/internal/feature/applications/transport/handler"
	appusecase "ccps_backend/internal/feature/applications/usecase"
	authadapters "ccps_backend/internal/feature/auth/adapters"
	authhandler "ccps_backend/internal/feature/auth/transport/handler"
	authusecase "ccps_backend/internal/feature/auth/usecase"
	jobadapters "ccps_backend/internal/feature/jobs/adapters"
	jobhandler "ccps_backend/internal/feature/jobs/transport/handler"
	jobusecase "ccps_backend/internal/feature/jobs/usecase"
	profileadapters "ccps_backend/internal/feature/profile/adapters"
	profilehandler "ccps_backend/internal/feature/profile/transport/handler"
	profileusecase "ccps_backend/internal/feature/profile/usecase"
	referraladapters "ccps_backend/internal/feature/referrals/adapters"
	referralhandler "ccps_backend/internal/feature/referrals/transport/handler"
	referralusecase "ccps_backend/internal/feature/referrals/usecase"
	savedadapters "ccps_backend/internal/feature/savedjobs/adapters"
	savedhandler "ccps_backend/internal/feature/savedjobs/transport/handler"
	savedusecase "ccps_backend/internal/feature/savedjobs/usecase"
	statsadapters "ccps_backend/internal/feature/stats/adapters"
	statshandler "ccps_backend/internal/feature/stats/transport/handler"
	statsusecase "ccps_backend/internal/feature/stats/usecase"
	threadadapters "ccps_backend/internal/feature/threads/adapters"
	threadhandler "ccps_backend/internal/feature/threads/transport/handler"
	threadusecase "ccps_backend/internal/feature/threads/usecase"
	"ccps_backend/internal/platform/cache"
	"ccps_backend/internal/platform/config"
	platformhandler "ccps_backend/internal/platform/http/handler"
	jwtmw "ccps_backend/internal/platform/jwt"
	"ccps_backend/internal/platform/mail"
	"ccps_backend/internal/shared/ratelimiter"
)

// redisPinger adapts the Redis client to the health check.
type redisPinger struct {
	rdb *redis.Client
}

func (p redisPinger) PingContext(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err()
}

// Build wires the whole application. rdb may be nil, in which case token
// revocation lives in the database and the job cache is disabled.
// ctx bounds background work started here.
func Build(ctx context.Context, cfg config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	deps := map[string]platformhandler.Pinger{"database": sqlDB}
	if rdb != nil {
		deps["redis"] = redisPinger{rdb: rdb}
	}

	// Repository
	users := authadapters.NewUserGorm(db)
	revocations := NewRevocationStore(rdb, db)
	jobs := cache.NewCachingJobRepository(rdb, cfg.JobsCacheTTL, jobadapters.NewJobGorm(db), "jobs")

	sweepRevocations(ctx, revocations, revocationSweepInterval)

	// Usecase
	tokens := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiration)
	authUC := authusecase.NewAuthUsecase(users, tokens, revocations, mail.NewLogMailer(nil), authusecase.Options{
		ResetTokenTTL: cfg.ResetTokenExpiration,
		ResetURLBase:  strings.TrimRight(cfg.FrontendURL, "/") + "/reset-password",
	})
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := authUC.EnsureAdmin(ctx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return nil, fmt.Errorf("failed to bootstrap admin: %w", err)
		}
	} else {
		slog.Warn("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin bootstrap")
	}

	jobUC := jobusecase.NewJobUsecase(jobs)
	appUC := appusecase.NewApplicationUsecase(appadapters.NewApplicationGorm(db), jobs)
	savedUC := savedusecase.NewSavedJobUsecase(savedadapters.NewSavedJobGorm(db), jobs)
	alumniUC := alumniusecase.NewAlumniUsecase(alumniadapters.NewAlumniGorm(db))
	referralUC := referralusecase.NewReferralUsecase(referraladapters.NewReferralGorm(db))
	profileUC := profileusecase.NewProfileUsecase(profileadapters.NewProfileGorm(db), users)
	threadUC := threadusecase.NewThreadUsecase(threadadapters.NewThreadGorm(db))
	statsUC := statsusecase.NewStatsUsecase(statsadapters.NewStatsGorm(db))

	// Handler
	handlers := router.Handlers{
		Health:       platformhandler.NewHealthHandler(deps),
		Auth:         authhandler.NewAuthHandler(authUC),
		Jobs:         jobhandler.NewJobHandler(jobUC),
		Applications: apphandler.NewApplicationHandler(appUC),
		SavedJobs:    savedhandler.NewSavedJobHandler(savedUC),
		Alumni:       alumnihandler.NewAlumniHandler(alumniUC),
		Referrals:    referralhandler.NewReferralHandler(referralUC),
		Profile:      profilehandler.NewProfileHandler(profileUC),
		Threads:      threadhandler.NewThreadHandler(threadUC),
		Stats:        statshandler.NewStatsHandler(statsUC),
	}

	mw := router.Middleware{
		Auth:        jwtmw.AuthRequired(jwtmw.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer), users, revocations),
		LoginLimit:  ratelimiter.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow).Middleware(),
		ForgotLimit: ratelimiter.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow).Middleware(),
	}

	return router.NewRouter(router.Options{
		FrontendURL: cfg.FrontendURL,
		Logger:      gin.Mode() != gin.TestMode,
	}, mw, handlers), nil
}
