// Package entity defines the academic profile attached to a student account.
package entity

import "time"

// StudentProfile holds a student's academic record. UserID is fixed at creation.
type StudentProfile struct {
	ID              uint     `gorm:"primaryKey"`
	UserID          uint     `gorm:"not null;uniqueIndex"`
	StudentID       string   `gorm:"size:64;not null;uniqueIndex"`
	Discipline      string   `gorm:"size:255;not null"`
	Program         string   `gorm:"size:255"`
	CGPA            *float64 `gorm:"column:cgpa"`
	Batch           int      `gorm:"not null;index"`
	Status          string   `gorm:"size:64;not null"`
	ProfilePhotoURL string   `gorm:"size:1024"`
	ResumeLink      string   `gorm:"size:1024"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OwnerID is the student account the profile belongs to.
func (p *StudentProfile) OwnerID() uint {
	return p.UserID
}
