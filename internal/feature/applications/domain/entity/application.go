// Package entity defines job applications and their status lifecycle.
package entity

import "time"

// Status is where an application stands in review.
type Status string

const (
	StatusApplied  Status = "applied"
	StatusInReview Status = "in-review"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusInReview, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether review of the application has finished.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanTransitionTo reports whether an application may move from s to next.
// Review only ever moves forward: applied, then in-review, then a decision.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusApplied:
		return next == StatusInReview
	case StatusInReview:
		return next == StatusAccepted || next == StatusRejected
	}
	return false
}

// Application is one student's application to one job.
// The (StudentID, JobID) pair is unique.
type Application struct {
	ID        uint   `gorm:"primaryKey"`
	StudentID uint   `gorm:"not null;uniqueIndex:idx_application_student_job;index"`
	JobID     uint   `gorm:"not null;uniqueIndex:idx_application_student_job;index"`
	Resume    string `gorm:"size:1024"`
	Phone     string `gorm:"size:32"`
	Address   string `gorm:"size:512"`
	Status    Status `gorm:"size:16;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerID is the student who applied.
func (a *Application) OwnerID() uint {
	return a.StudentID
}
