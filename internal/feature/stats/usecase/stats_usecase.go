// Package usecase computes placement statistics.
package usecase

import (
	"context"
	"math"

	authentity "ccps_backend/internal/feature/auth/domain/entity"
	"ccps_backend/internal/feature/stats/domain/entity"
	"ccps_backend/internal/platform/authz"
)

// TopCompaniesLimit caps the hiring leaderboard.
const TopCompaniesLimit = 5

// StatsRepository runs the aggregate queries behind the dashboard.
type StatsRepository interface {
	CountDistinctCompanies(ctx context.Context) (int64, error)
	CountPlacedStudents(ctx context.Context) (int64, error)
	TopHiringCompanies(ctx context.Context, limit int) ([]entity.CompanyCount, error)
	PlacedByBatch(ctx context.Context) (map[int]int64, error)
	UsersByRole(ctx context.Context) (map[string]int64, error)
	JobsByType(ctx context.Context) (map[string]int64, error)
	ApplicationsByStatus(ctx context.Context) (map[string]int64, error)
}

type statsUsecase struct {
	stats StatsRepository
}

// NewStatsUsecase creates the statistics usecase.
func NewStatsUsecase(stats StatsRepository) *statsUsecase {
	return &statsUsecase{stats: stats}
}

// Overview is admin-only.
func (u *statsUsecase) Overview(ctx context.Context, actor authz.Identity) (*entity.Overview, error) {
	if err := authz.RequireRole(actor, authentity.RoleAdmin); err != nil {
		return nil, err
	}

	var (
		o   entity.Overview
		err error
	)
	if o.CompaniesVisited, err = u.stats.CountDistinctCompanies(ctx); err != nil {
		return nil, err
	}
	if o.TotalPlaced, err = u.stats.CountPlacedStudents(ctx); err != nil {
		return nil, err
	}
	if o.TopCompanies, err = u.stats.TopHiringCompanies(ctx, TopCompaniesLimit); err != nil {
		return nil, err
	}
	if o.PlacedByBatch, err = u.stats.PlacedByBatch(ctx); err != nil {
		return nil, err
	}
	if o.UsersByRole, err = u.stats.UsersByRole(ctx); err != nil {
		return nil, err
	}
	if o.JobsByType, err = u.stats.JobsByType(ctx); err != nil {
		return nil, err
	}
	if o.ApplicationsByStatus, err = u.stats.ApplicationsByStatus(ctx); err != nil {
		return nil, err
	}

	o.TotalStudents = o.UsersByRole[string(authentity.RoleStudent)]
	if o.TotalStudents > 0 {
		pct := float64(o.TotalPlaced) / float64(o.TotalStudents) * 100
		o.PlacementPercentage = math.Round(pct*10) / 10
	}
	return &o, nil
}
