// Package entity defines referral requests from students to alumni.
package entity

import "time"

// Status is where a referral request stands.
type Status string

const (
	StatusPending  Status = "pending"
	StatusProvided Status = "provided"
)

// Referral is a student's request for a referral to an external posting.
// The student's name and email are copied at request time.
type Referral struct {
	ID           uint   `gorm:"primaryKey"`
	StudentID    uint   `gorm:"not null;index"`
	StudentName  string `gorm:"size:255"`
	StudentEmail string `gorm:"size:255"`
	CompanyName  string `gorm:"size:255;not null"`
	JobID        string `gorm:"size:128;not null"`
	ResumeLink   string `gorm:"size:1024;not null"`
	ReferralLink string `gorm:"size:1024"`
	Status       Status `gorm:"size:16;not null;index"`
	ProvidedBy   *uint
	AlumniEmail  string `gorm:"size:255"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OwnerID is the requesting student.
func (r *Referral) OwnerID() uint {
	return r.StudentID
}
