// Package entity defines the job posting entities.
package entity

import "time"

// JobType says whether a posting is run through the placement cell.
type JobType string

const (
	JobTypeOnCampus  JobType = "on-campus"
	JobTypeOffCampus JobType = "off-campus"
)

// Valid reports whether t is a known job type.
func (t JobType) Valid() bool {
	return t == JobTypeOnCampus || t == JobTypeOffCampus
}

// Job is a posting students can browse, save, vote on and apply to.
type Job struct {
	ID              uint     `gorm:"primaryKey"`
	Title           string   `gorm:"size:255;not null"`
	Company         string   `gorm:"size:255;not null;index"`
	Description     string   `gorm:"type:text"`
	RequiredSkills  []string `gorm:"serializer:json;type:text"`
	Type            JobType  `gorm:"size:16;not null;index"`
	Batch           int      `gorm:"index"`
	RelevanceScore  int
	Deadline        *time.Time
	Expiry          *time.Time
	ApplicationLink string `gorm:"size:1024"`
	Author          string `gorm:"size:255"`

	// Score is the sum of all vote values and is only written by the vote path.
	Score int `gorm:"not null;default:0"`

	CreatedBy uint `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Vote is one user's relevance vote on a job. Value is +1 or -1.
type Vote struct {
	JobID  uint `gorm:"primaryKey"`
	UserID uint `gorm:"primaryKey;index"`
	Value  int  `gorm:"not null"`
}

// TableName keeps votes next to the jobs table.
func (Vote) TableName() string {
	return "job_votes"
}
