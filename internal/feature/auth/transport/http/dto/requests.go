// Package dto defines request and response bodies for the auth endpoints.
package dto

// SignupReq is the body of POST /auth/signup.
type SignupReq struct {
	Name     string `json:"name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"required,oneof=student alumni recruiter admin"`
}

// LoginReq is the body of POST /auth/login.
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordReq is the body of POST /auth/change-password.
type ChangePasswordReq struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8,max=72"`
}

// ForgotPasswordReq is the body of POST /auth/forgot-password.
type ForgotPasswordReq struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordReq is the body of POST /auth/reset-password/:token.
type ResetPasswordReq struct {
	Password string `json:"password" binding:"required,min=8,max=72"`
}
