// Package entity defines discussion forum threads and their comments.
package entity

import "time"

// Thread is a forum post. Author name is copied at creation time.
type Thread struct {
	ID         uint      `gorm:"primaryKey"`
	Title      string    `gorm:"size:255;not null"`
	Text       string    `gorm:"type:text;not null"`
	FileURL    string    `gorm:"size:1024"`
	AuthorID   uint      `gorm:"not null;index"`
	AuthorName string    `gorm:"size:255"`
	Comments   []Comment `gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OwnerID is the thread's author.
func (t *Thread) OwnerID() uint {
	return t.AuthorID
}

// Comment is a reply in a thread.
type Comment struct {
	ID         uint   `gorm:"primaryKey"`
	ThreadID   uint   `gorm:"not null;index"`
	Text       string `gorm:"type:text;not null"`
	FileURL    string `gorm:"size:1024"`
	AuthorID   uint   `gorm:"not null;index"`
	AuthorName string `gorm:"size:255"`
	CreatedAt  time.Time
}

// OwnerID is the comment's author.
func (c *Comment) OwnerID() uint {
	return c.AuthorID
}
