// Package entity defines the placement statistics shown on the admin dashboard.
package entity

// CompanyCount is the number of accepted applications for one company.
type CompanyCount struct {
	Company string
	Count   int64
}

// Overview is a point-in-time summary computed from jobs, users and applications.
type Overview struct {
	CompaniesVisited     int64
	TotalStudents        int64
	TotalPlaced          int64
	PlacementPercentage  float64
	TopCompanies         []CompanyCount
	PlacedByBatch        map[int]int64
	UsersByRole          map[string]int64
	JobsByType           map[string]int64
	ApplicationsByStatus map[string]int64
}
