// Package handler provides the HTTP handlers for the alumni directory.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ccps_backend/internal/feature/alumni/domain/entity"
	"ccps_backend/internal/feature/alumni/transport/http/dto"
	"ccps_backend/internal/feature/alumni/usecase"
	"ccps_backend/internal/platform/authz"
	"ccps_backend/internal/platform/http/params"
	"ccps_backend/internal/platform/http/response"
)

// AlumniUsecase is the alumni usecase as seen by the handler.
type AlumniUsecase interface {
	List(ctx context.Context) ([]entity.Alumni, error)
	Search(ctx context.Context, field usecase.SearchField, raw string) ([]entity.Alumni, error)
	Create(ctx context.Context, actor authz.Identity, in usecase.AlumniInput) (*entity.Alumni, error)
	Update(ctx context.Context, actor authz.Identity, id uint, in usecase.AlumniInput) (*entity.Alumni, error)
	Delete(ctx context.Context, actor authz.Identity, id uint) error
	Me(ctx context.Context, actor authz.Identity) (*entity.Alumni, error)
	UpdateMe(ctx context.Context, actor authz.Identity, in usecase.AlumniInput) (*entity.Alumni, error)
}

// AlumniHandler serves /alumni.
type AlumniHandler struct {
	alumni AlumniUsecase
}

// NewAlumniHandler creates an AlumniHandler.
func NewAlumniHandler(alumni AlumniUsecase) *AlumniHandler {
	return &AlumniHandler{alumni: alumni}
}

// List handles GET /alumni.
func (h *AlumniHandler) List(c *gin.Context) {
	list, err := h.alumni.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAlumniList(list))
}

// Search returns the handler for GET /alumni/search-by-<field>, reading the value
// from the query parameter named param.
func (h *AlumniHandler) Search(field usecase.SearchField, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := h.alumni.Search(c.Request.Context(), field, c.Query(param))
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToAlumniList(list))
	}
}

// Create handles POST /alumni.
func (h *AlumniHandler) Create(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AlumniReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	a, err := h.alumni.Create(c.Request.Context(), id, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("alumni created", "alumni_id", a.ID, "admin_id", id.UserID)
	c.JSON(http.StatusCreated, dto.ToAlumniResponse(*a))
}

// Update handles PUT /alumni/:id.
func (h *AlumniHandler) Update(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	alumniID, err := params.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AlumniReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	a, err := h.alumni.Update(c.Request.Context(), id, alumniID, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAlumniResponse(*a))
}

// Delete handles DELETE /alumni/:id.
func (h *AlumniHandler) Delete(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	alumniID, err := params.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.alumni.Delete(c.Request.Context(), id, alumniID); err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("alumni deleted", "alumni_id", alumniID, "admin_id", id.UserID)
	response.Message(c, http.StatusOK, "Alumni deleted successfully")
}

// Me handles GET /alumni/me.
func (h *AlumniHandler) Me(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	a, err := h.alumni.Me(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAlumniResponse(*a))
}

// UpdateMe handles PUT /alumni/me.
func (h *AlumniHandler) UpdateMe(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AlumniReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	a, err := h.alumni.UpdateMe(c.Request.Context(), id, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAlumniResponse(*a))
}
