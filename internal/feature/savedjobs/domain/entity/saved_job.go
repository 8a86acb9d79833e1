// Package entity defines a user's bookmarked job postings.
package entity

import "time"

// SavedJob bookmarks one job for one user. The (UserID, JobID) pair is unique.
type SavedJob struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_saved_job_user_job;index"`
	JobID     uint `gorm:"not null;uniqueIndex:idx_saved_job_user_job;index"`
	CreatedAt time.Time
}

// OwnerID is the user who saved the job.
func (s *SavedJob) OwnerID() uint {
	return s.UserID
}
