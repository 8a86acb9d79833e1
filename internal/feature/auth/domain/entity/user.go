// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Role is the coarse permission class of a user.
type Role string

const (
	RoleStudent   Role = "student"
	RoleAlumni    Role = "alumni"
	RoleAdmin     Role = "admin"
	RoleRecruiter Role = "recruiter"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAlumni, RoleAdmin, RoleRecruiter:
		return true
	}
	return false
}

// SelfAssignable reports whether a visitor may pick r at signup.
// Admin accounts are only ever created by the bootstrap step.
func (r Role) SelfAssignable() bool {
	return r == RoleStudent || r == RoleAlumni || r == RoleRecruiter
}

// User represents a registered account.
type User struct {
	ID uint `gorm:"primaryKey"`

	Name string `gorm:"size:255;not null"`

	// Email must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password holds the bcrypt hash, never plaintext.
	Password string `gorm:"size:255;not null"`

	Role Role `gorm:"size:32;not null;index"`

	// ResetTokenHash is the SHA-256 of the outstanding password reset token, if any.
	ResetTokenHash      *string `gorm:"size:64;index"`
	ResetTokenExpiresAt *time.Time

	// PasswordChangedAt invalidates every session token issued before it.
	PasswordChangedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TokensIssuedBeforeInvalid reports whether a token issued at iat predates the
// last password change. Token timestamps have second precision.
func (u *User) TokensIssuedBeforeInvalid(iat time.Time) bool {
	if u.PasswordChangedAt == nil {
		return false
	}
	return iat.Before(u.PasswordChangedAt.Truncate(time.Second))
}

// RevokedToken records a session token that was explicitly logged out.
type RevokedToken struct {
	JTI       string    `gorm:"primaryKey;size:64"`
	UserID    uint      `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	RevokedAt time.Time `gorm:"not null"`
}
