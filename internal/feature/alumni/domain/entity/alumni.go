// Package entity defines alumni directory entries.
package entity

import "time"

// Alumni is a directory entry for a graduate. UserID links it to the graduate's
// own account when one exists; that account may then edit the entry.
type Alumni struct {
	ID           uint        `gorm:"primaryKey"`
	Name         string      `gorm:"size:255;not null;index"`
	Company      string      `gorm:"size:255;index"`
	LinkedIn     string      `gorm:"size:512"`
	InstituteID  string      `gorm:"size:64"`
	MobileNumber string      `gorm:"size:32"`
	Email        string      `gorm:"size:255"`
	Batch        int         `gorm:"index"`
	Jobs         []AlumniJob `gorm:"foreignKey:AlumniID;constraint:OnDelete:CASCADE"`
	UserID       *uint       `gorm:"uniqueIndex"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Alumni) TableName() string { return "alumni" }

// OwnerID is the linked account, or 0 when the entry is unlinked.
func (a *Alumni) OwnerID() uint {
	if a.UserID == nil {
		return 0
	}
	return *a.UserID
}

// AlumniJob is one position held by a graduate. JobID is the employer's own
// posting or requisition id, not a portal job.
type AlumniJob struct {
	ID       uint   `gorm:"primaryKey"`
	AlumniID uint   `gorm:"not null;index"`
	JobID    string `gorm:"size:128;index"`
	Role     string `gorm:"size:255"`
}

func (AlumniJob) TableName() string { return "alumni_jobs" }
