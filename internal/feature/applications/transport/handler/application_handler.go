// Package handler provides the HTTP handlers for job applications.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ccps_backend/internal/feature/applications/domain/entity"
	"ccps_backend/internal/feature/applications/transport/http/dto"
	"ccps_backend/internal/feature/applications/usecase"
	"ccps_backend/internal/platform/authz"
	"ccps_backend/internal/platform/http/params"
	"ccps_backend/internal/platform/http/response"
)

// ApplicationUsecase is the application usecase as seen by the handler.
type ApplicationUsecase interface {
	StudentApplications(ctx context.Context, actor authz.Identity) (onCampus, offCampus []usecase.Entry, err error)
	Apply(ctx context.Context, actor authz.Identity, in usecase.ApplyInput) (*entity.Application, error)
	Withdraw(ctx context.Context, actor authz.Identity, jobID uint) error
	Cancel(ctx context.Context, actor authz.Identity, jobID, studentID uint) error
	Applicants(ctx context.Context, actor authz.Identity, jobID uint) ([]usecase.Applicant, error)
	UpdateStatus(ctx context.Context, actor authz.Identity, id uint, next entity.Status) (*entity.Application, error)
}

// ApplicationHandler serves /applications.
type ApplicationHandler struct {
	apps ApplicationUsecase
}

// NewApplicationHandler creates an ApplicationHandler.
func NewApplicationHandler(apps ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{apps: apps}
}

// StudentApplications handles GET /applications/student-applications.
func (h *ApplicationHandler) StudentApplications(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	on, off, err := h.apps.StudentApplications(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":               true,
		"onCampusApplications":  dto.ToEntryResponses(on),
		"offCampusApplications": dto.ToEntryResponses(off),
	})
}

// Apply handles POST /applications/apply.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ApplyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	app, err := h.apps.Apply(c.Request.Context(), id, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("application submitted", "application_id", app.ID, "job_id", app.JobID, "student_id", app.StudentID)
	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Application submitted",
		"application": dto.ToApplicationResponse(*app),
	})
}

// Withdraw handles DELETE /applications/withdraw/:jobId.
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
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
	if err := h.apps.Withdraw(c.Request.Context(), id, jobID); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application withdrawn successfully"})
}

// Cancel handles DELETE /applications/cancel/:jobId?studentId=.
func (h *ApplicationHandler) Cancel(c *gin.Context) {
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
	studentID, err := params.QueryID(c, "studentId")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.apps.Cancel(c.Request.Context(), id, jobID, studentID); err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("application cancelled", "job_id", jobID, "student_id", studentID, "admin_id", id.UserID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Application cancelled successfully"})
}

// Applicants handles GET /applications/job/:jobId/applicants.
func (h *ApplicationHandler) Applicants(c *gin.Context) {
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
	applicants, err := h.apps.Applicants(c.Request.Context(), id, jobID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "applicants": dto.ToApplicantResponses(applicants)})
}

// UpdateStatus handles PATCH /applications/:id/status.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	appID, err := params.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.StatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	app, err := h.apps.UpdateStatus(c.Request.Context(), id, appID, entity.Status(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("application status changed", "application_id", app.ID, "status", app.Status, "admin_id", id.UserID)
	c.JSON(http.StatusOK, gin.H{"success": true, "application": dto.ToApplicationResponse(*app)})
}
