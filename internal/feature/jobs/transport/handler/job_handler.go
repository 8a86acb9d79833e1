// Package handler provides the HTTP handlers for job postings.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ccps_backend/internal/feature/jobs/domain/entity"
	"ccps_backend/internal/feature/jobs/transport/http/dto"
	"ccps_backend/internal/feature/jobs/usecase"
	"ccps_backend/internal/platform/authz"
	"ccps_backend/internal/platform/http/params"
	"ccps_backend/internal/platform/http/response"
	"ccps_backend/internal/shared/apperr"
)

// JobUsecase is the job usecase as seen by the handler.
type JobUsecase interface {
	List(ctx context.Context, viewer authz.Identity) ([]usecase.Listing, error)
	Get(ctx context.Context, viewer authz.Identity, id uint) (usecase.Listing, error)
	Create(ctx context.Context, actor authz.Identity, in usecase.JobInput) (*entity.Job, error)
	Update(ctx context.Context, actor authz.Identity, id uint, in usecase.JobInput) (*entity.Job, error)
	Delete(ctx context.Context, actor authz.Identity, id uint) error
	Vote(ctx context.Context, actor authz.Identity, id uint, value int) (usecase.Listing, error)
}

// JobHandler serves /jobs.
type JobHandler struct {
	jobs JobUsecase
}

// NewJobHandler creates a JobHandler.
func NewJobHandler(jobs JobUsecase) *JobHandler {
	return &JobHandler{jobs: jobs}
}

// List handles GET /jobs.
func (h *JobHandler) List(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	listings, err := h.jobs.List(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Jobs fetched successfully", "jobs": dto.ToListResponse(listings)})
}

// Get handles GET /jobs/:id.
func (h *JobHandler) Get(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	jobID, err := params.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	l, err := h.jobs.Get(c.Request.Context(), id, jobID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(l.Job, l.MyVote))
}

// Create handles POST /jobs.
func (h *JobHandler) Create(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.JobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	if missing := req.Missing(); len(missing) > 0 {
		response.Error(c, apperr.New(apperr.Validation, "Missing required fields: "+strings.Join(missing, ", ")))
		return
	}
	in, err := req.ToInput()
	if err != nil {
		response.Error(c, apperr.New(apperr.Validation, err.Error()))
		return
	}
	job, err := h.jobs.Create(c.Request.Context(), id, in)
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("job created", "job_id", job.ID, "admin_id", id.UserID)
	c.JSON(http.StatusCreated, gin.H{"message": "Job created successfully", "job": dto.ToJobResponse(*job, 0)})
}

// Update handles PUT /jobs/:id.
func (h *JobHandler) Update(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	jobID, err := params.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.JobReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		response.Error(c, apperr.New(apperr.Validation, err.Error()))
		return
	}
	job, err := h.jobs.Update(c.Request.Context(), id, jobID, in)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job updated successfully", "job": dto.ToJobResponse(*job, 0)})
}

// Delete handles DELETE /jobs/:id.
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	jobID, err := params.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.jobs.Delete(c.Request.Context(), id, jobID); err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("job deleted", "job_id", jobID, "admin_id", id.UserID)
	response.Message(c, http.StatusOK, "Job deleted successfully")
}

// Upvote handles POST /jobs/:id/upvote.
func (h *JobHandler) Upvote(c *gin.Context) { h.vote(c, 1) }

// Downvote handles POST /jobs/:id/downvote.
func (h *JobHandler) Downvote(c *gin.Context) { h.vote(c, -1) }

func (h *JobHandler) vote(c *gin.Context, value int) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	jobID, err := params.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	l, err := h.jobs.Vote(c.Request.Context(), id, jobID, value)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJobResponse(l.Job, l.MyVote))
}
