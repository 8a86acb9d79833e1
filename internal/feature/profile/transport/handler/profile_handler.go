// Package handler provides the HTTP handlers for student profiles.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ccps_backend/internal/feature/profile/transport/http/dto"
	"ccps_backend/internal/feature/profile/usecase"
	"ccps_backend/internal/platform/authz"
	"ccps_backend/internal/platform/http/params"
	"ccps_backend/internal/platform/http/response"
)

// ProfileUsecase is the profile usecase as seen by the handler.
type ProfileUsecase interface {
	Me(ctx context.Context, actor authz.Identity) (*usecase.Profile, error)
	ForUser(ctx context.Context, actor authz.Identity, userID uint) (*usecase.Profile, error)
	Create(ctx context.Context, actor authz.Identity, in usecase.ProfileInput) (*usecase.Profile, error)
	Update(ctx context.Context, actor authz.Identity, in usecase.ProfileInput) (*usecase.Profile, error)
	Delete(ctx context.Context, actor authz.Identity) error
}

// ProfileHandler serves /profile.
type ProfileHandler struct {
	profiles ProfileUsecase
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(profiles ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Me handles GET /profile/me.
func (h *ProfileHandler) Me(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	p, err := h.profiles.Me(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(*p))
}

// ForUser handles GET /profile/:userId.
func (h *ProfileHandler) ForUser(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	userID, err := params.ID(c, "userId")
	if err != nil {
		response.Error(c, err)
		return
	}
	p, err := h.profiles.ForUser(c.Request.Context(), id, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToProfileResponse(*p))
}

// Create handles POST /profile/me.
func (h *ProfileHandler) Create(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	p, err := h.profiles.Create(c.Request.Context(), id, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Student profile created successfully", "profile": dto.ToProfileResponse(*p)})
}

// Update handles PUT /profile/me.
func (h *ProfileHandler) Update(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	p, err := h.profiles.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "profile": dto.ToProfileResponse(*p)})
}

// Delete handles DELETE /profile/me.
func (h *ProfileHandler) Delete(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.profiles.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Profile deleted successfully")
}
