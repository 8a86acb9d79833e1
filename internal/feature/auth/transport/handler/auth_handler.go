// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ccps_backend/internal/feature/auth/domain/entity"
	"ccps_backend/internal/feature/auth/transport/http/dto"
	"ccps_backend/internal/feature/auth/usecase"
	"ccps_backend/internal/platform/authz"
	"ccps_backend/internal/platform/http/response"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	Signup(ctx context.Context, in usecase.SignupInput) (*entity.User, error)
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
	Logout(ctx context.Context, userID uint, jti string, expiresAt time.Time) error
	ChangePassword(ctx context.Context, userID uint, jti string, expiresAt time.Time, current, next string) (string, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, password string) error
}

// AuthHandler は /auth 配下のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup は POST /auth/signup を処理します。
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	user, err := h.auth.Signup(c.Request.Context(), usecase.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		slog.Warn("signup failed", "error", err, "role", req.Role, "remote_addr", c.ClientIP())
		response.Error(c, err)
		return
	}
	slog.Info("user signup successful", "user_id", user.ID, "role", user.Role, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "user": dto.ToUserResponse(user)})
}

// Login は POST /auth/login を処理します。
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "remote_addr", c.ClientIP())
		response.Error(c, err)
		return
	}
	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token, User: dto.ToUserResponse(user)})
}

// Logout は POST /auth/logout を処理し、提示されたトークンを失効させます。
func (h *AuthHandler) Logout(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.auth.Logout(c.Request.Context(), id.UserID, id.TokenID, id.ExpiresAt); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Logged out successfully")
}

// Me は GET /auth/me を処理します。
func (h *AuthHandler) Me(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(id.User))
}

// ChangePassword は POST /auth/change-password を処理します。
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ChangePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	token, err := h.auth.ChangePassword(c.Request.Context(), id.UserID, id.TokenID, id.ExpiresAt, req.CurrentPassword, req.NewPassword)
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("password changed", "user_id", id.UserID)
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token, User: dto.ToUserResponse(id.User)})
}

// ForgotPassword は POST /auth/forgot-password を処理します。
// ユーザー列挙攻撃を防止するため、登録の有無はレスポンスに含めません。
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "If the email is registered, a reset link has been sent")
}

// ResetPassword は POST /auth/reset-password/:token を処理します。
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	if err := h.auth.ResetPassword(c.Request.Context(), c.Param("token"), req.Password); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Password has been reset")
}
