package dto

import "ccps_backend/internal/feature/stats/domain/entity"

type CompanyResponse struct {
	Company string `json:"company"`
	Count   int64  `json:"count"`
}

// StatsResponse is the body of GET /stats.
type StatsResponse struct {
	CompaniesVisited     int64             `json:"companiesVisited"`
	TotalStudents        int64             `json:"totalStudents"`
	TotalPlaced          int64             `json:"totalPlaced"`
	PlacementPercentage  float64           `json:"placementPercentage"`
	BestCompanies        []CompanyResponse `json:"bestCompanies"`
	PlacedByBatch        map[int]int64     `json:"placedByBatch"`
	UsersByRole          map[string]int64  `json:"usersByRole"`
	JobsByType           map[string]int64  `json:"jobsByType"`
	ApplicationsByStatus map[string]int64  `json:"applicationsByStatus"`
}

func ToStatsResponse(o *entity.Overview) StatsResponse {
	best := make([]CompanyResponse, len(o.TopCompanies))
	for i, c := range o.TopCompanies {
		best[i] = CompanyResponse{Company: c.Company, Count: c.Count}
	}
	return StatsResponse{
		CompaniesVisited:     o.CompaniesVisited,
		TotalStudents:        o.TotalStudents,
		TotalPlaced:          o.TotalPlaced,
		PlacementPercentage:  o.PlacementPercentage,
		BestCompanies:        best,
		PlacedByBatch:        nonNil(o.PlacedByBatch),
		UsersByRole:          nonNil(o.UsersByRole),
		JobsByType:           nonNil(o.JobsByType),
		ApplicationsByStatus: nonNil(o.ApplicationsByStatus),
	}
}

func nonNil[K comparable](m map[K]int64) map[K]int64 {
	if m == nil {
		return map[K]int64{}
	}
	return m
}
