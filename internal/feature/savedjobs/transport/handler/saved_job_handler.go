// Package handler provides the HTTP handlers for saved jobs.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ccps_backend/internal/feature/savedjobs/transport/http/dto"
	"ccps_backend/internal/feature/savedjobs/usecase"
	"ccps_backend/internal/platform/authz"
	"ccps_backend/internal/platform/http/params"
	"ccps_backend/internal/platform/http/response"
)

// SavedJobUsecase is the saved-job usecase as seen by the handler.
type SavedJobUsecase interface {
	Save(ctx context.Context, actor authz.Identity, jobID uint) (bool, error)
	List(ctx context.Context, actor authz.Identity) ([]usecase.Entry, error)
	Remove(ctx context.Context, actor authz.Identity, jobID uint) error
}

// SavedJobHandler serves /saved-jobs and its /applications aliases.
type SavedJobHandler struct {
	saved SavedJobUsecase
}

// NewSavedJobHandler creates a SavedJobHandler.
func NewSavedJobHandler(saved SavedJobUsecase) *SavedJobHandler {
	return &SavedJobHandler{saved: saved}
}

// Save handles POST /saved-jobs/save. Saving twice is not an error.
func (h *SavedJobHandler) Save(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.SaveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	created, err := h.saved.Save(c.Request.Context(), id, req.JobID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !created {
		response.Message(c, http.StatusOK, "Already saved.")
		return
	}
	response.Message(c, http.StatusOK, "Job saved.")
}

// List handles GET /saved-jobs/saved.
func (h *SavedJobHandler) List(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	entries, err := h.saved.List(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"savedJobs": dto.ToSavedJobResponses(entries)})
}

// Remove handles DELETE /saved-jobs/:jobId.
func (h *SavedJobHandler) Remove(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	jobID, err := params.ID(c, "jobId")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.saved.Remove(c.Request.Context(), id, jobID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Job removed from saved list.")
}
