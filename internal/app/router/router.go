// Package router mounts every HTTP route under /api.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	alumnihandler "ccps_backend/internal/feature/alumni/transport/handler"
	alumniusecase "ccps_backend/internal/feature/alumni/usecase"
	apphandler "ccps_backend/internal/feature/applications/transport/handler"
	authentity "ccps_backend/internal/feature/auth/domain/entity"
	authhandler "ccps_backend/internal/feature/auth/transport/handler"
	jobhandler "ccps_backend/internal/feature/jobs/transport/handler"
	profilehandler "ccps_backend/internal/feature/profile/transport/handler"
	referralhandler "ccps_backend/internal/feature/referrals/transport/handler"
	savedhandler "ccps_backend/internal/feature/savedjobs/transport/handler"
	statshandler "ccps_backend/internal/feature/stats/transport/handler"
	threadhandler "ccps_backend/internal/feature/threads/transport/handler"
	"ccps_backend/internal/platform/authz"
	platformhandler "ccps_backend/internal/platform/http/handler"
)

// Handlers はルーターに登録する各フィーチャーのハンドラーです。
type Handlers struct {
	Health       *platformhandler.HealthHandler
	Auth         *authhandler.AuthHandler
	Jobs         *jobhandler.JobHandler
	Applications *apphandler.ApplicationHandler
	SavedJobs    *savedhandler.SavedJobHandler
	Alumni       *alumnihandler.AlumniHandler
	Referrals    *referralhandler.ReferralHandler
	Profile      *profilehandler.ProfileHandler
	Threads      *threadhandler.ThreadHandler
	Stats        *statshandler.StatsHandler
}

// Middleware は設定から組み立てたミドルウェアです。
type Middleware struct {
	// Auth はBearerトークンを検証し、失敗時は401で中断する
	Auth gin.HandlerFunc

	LoginLimit  gin.HandlerFunc
	ForgotLimit gin.HandlerFunc
}

// Options はエンジン自体の設定です。
type Options struct {
	FrontendURL string

	// Logger が false ならginのリクエストログを出さない（テスト用）
	Logger bool
}

// NewRouter は全ルートを登録したエンジンを生成します。
func NewRouter(opts Options, mw Middleware, h Handlers) *gin.Engine {
	r := gin.New()
	if opts.Logger {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{opts.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	api.GET("/health", h.Health.Health)
	api.HEAD("/health", h.Health.Health)

	adminOnly := authz.RoleRequired(authentity.RoleAdmin)

	auth := api.Group("/auth")
	{
		auth.POST("/signup", h.Auth.Signup)
		auth.POST("/login", mw.LoginLimit, h.Auth.Login)
		auth.POST("/forgot-password", mw.ForgotLimit, h.Auth.ForgotPassword)
		auth.POST("/reset-password/:token", h.Auth.ResetPassword)

		auth.POST("/logout", mw.Auth, h.Auth.Logout)
		auth.GET("/me", mw.Auth, h.Auth.Me)
		auth.POST("/change-password", mw.Auth, h.Auth.ChangePassword)
	}

	jobs := api.Group("/jobs", mw.Auth)
	{
		jobs.GET("", h.Jobs.List)
		jobs.GET("/:id", h.Jobs.Get)
		jobs.POST("", adminOnly, h.Jobs.Create)
		jobs.PUT("/:id", adminOnly, h.Jobs.Update)
		jobs.DELETE("/:id", adminOnly, h.Jobs.Delete)
		jobs.POST("/:id/upvote", h.Jobs.Upvote)
		jobs.POST("/:id/downvote", h.Jobs.Downvote)
	}

	apps := api.Group("/applications", mw.Auth)
	{
		apps.GET("/student-applications", h.Applications.StudentApplications)
		apps.POST("/apply", h.Applications.Apply)
		apps.DELETE("/withdraw/:jobId", h.Applications.Withdraw)
		apps.DELETE("/cancel/:jobId", adminOnly, h.Applications.Cancel)
		apps.GET("/job/:jobId/applicants", adminOnly, h.Applications.Applicants)
		apps.PATCH("/:id/status", adminOnly, h.Applications.UpdateStatus)

		// 旧クライアント互換: applications 配下でも求人を保存できる
		apps.POST("/save", h.SavedJobs.Save)
		apps.GET("/saved", h.SavedJobs.List)
	}

	saved := api.Group("/saved-jobs", mw.Auth)
	{
		saved.POST("/save", h.SavedJobs.Save)
		saved.GET("/saved", h.SavedJobs.List)
		saved.DELETE("/:jobId", h.SavedJobs.Remove)
	}

	alumni := api.Group("/alumni")
	{
		alumni.GET("", h.Alumni.List)
		alumni.GET("/search-by-id", h.Alumni.Search(alumniusecase.SearchByJobID, "jobId"))
		alumni.GET("/search-by-role", h.Alumni.Search(alumniusecase.SearchByRole, "jobRole"))
		alumni.GET("/search-by-company", h.Alumni.Search(alumniusecase.SearchByCompany, "company"))
		alumni.GET("/search-by-batch", h.Alumni.Search(alumniusecase.SearchByBatch, "batch"))
		alumni.GET("/search-by-name", h.Alumni.Search(alumniusecase.SearchByName, "name"))

		alumni.GET("/me", mw.Auth, h.Alumni.Me)
		alumni.PUT("/me", mw.Auth, h.Alumni.UpdateMe)

		alumni.POST("", mw.Auth, adminOnly, h.Alumni.Create)
		alumni.PUT("/:id", mw.Auth, adminOnly, h.Alumni.Update)
		alumni.DELETE("/:id", mw.Auth, adminOnly, h.Alumni.Delete)
	}

	referrals := api.Group("/referrals", mw.Auth)
	{
		referrals.GET("", h.Referrals.List)
		referrals.POST("", h.Referrals.Request)
		referrals.PUT("/:id/provide", h.Referrals.Provide)
		referrals.DELETE("/:id", h.Referrals.Delete)
	}

	profile := api.Group("/profile", mw.Auth)
	{
		profile.GET("/me", h.Profile.Me)
		profile.POST("/me", h.Profile.Create)
		profile.PUT("/me", h.Profile.Update)
		profile.DELETE("/me", h.Profile.Delete)
		profile.GET("/:userId", adminOnly, h.Profile.ForUser)
	}

	threads := api.Group("/threads", mw.Auth)
	{
		threads.GET("", h.Threads.List)
		threads.POST("", h.Threads.Create)
		threads.POST("/:id/comments", h.Threads.Comment)
		threads.DELETE("/:id", h.Threads.Delete)
		threads.DELETE("/:id/comments/:commentId", h.Threads.DeleteComment)
	}

	api.GET("/stats", mw.Auth, adminOnly, h.Stats.Overview)

	return r
}
