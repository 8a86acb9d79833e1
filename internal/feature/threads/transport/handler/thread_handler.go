// Package handler provides the HTTP handlers for the discussion forum.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ccps_backend/internal/feature/threads/domain/entity"
	"ccps_backend/internal/feature/threads/transport/http/dto"
	"ccps_backend/internal/feature/threads/usecase"
	"ccps_backend/internal/platform/authz"
	"ccps_backend/internal/platform/http/params"
	"ccps_backend/internal/platform/http/response"
)

// ThreadUsecase is the forum usecase as seen by the handler.
type ThreadUsecase interface {
	List(ctx context.Context) ([]entity.Thread, error)
	Create(ctx context.Context, actor authz.Identity, in usecase.PostInput) (*entity.Thread, error)
	Comment(ctx context.Context, actor authz.Identity, threadID uint, in usecase.PostInput) (*entity.Comment, error)
	Delete(ctx context.Context, actor authz.Identity, id uint) error
	DeleteComment(ctx context.Context, actor authz.Identity, threadID, commentID uint) error
}

// ThreadHandler serves /threads.
type ThreadHandler struct {
	threads ThreadUsecase
}

// NewThreadHandler creates a ThreadHandler.
func NewThreadHandler(threads ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{threads: threads}
}

// List handles GET /threads.
func (h *ThreadHandler) List(c *gin.Context) {
	threads, err := h.threads.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToThreadList(threads))
}

// Create handles POST /threads.
func (h *ThreadHandler) Create(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ThreadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	t, err := h.threads.Create(c.Request.Context(), id, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToThreadResponse(*t))
}

// Comment handles POST /threads/:id/comments.
func (h *ThreadHandler) Comment(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	threadID, err := params.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.CommentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	cm, err := h.threads.Comment(c.Request.Context(), id, threadID, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCommentResponse(*cm))
}

// Delete handles DELETE /threads/:id.
func (h *ThreadHandler) Delete(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	threadID, err := params.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.threads.Delete(c.Request.Context(), id, threadID); err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("thread deleted", "thread_id", threadID, "user_id", id.UserID, "role", id.Role)
	response.Message(c, http.StatusOK, "Thread deleted")
}

// DeleteComment handles DELETE /threads/:id/comments/:commentId.
func (h *ThreadHandler) DeleteComment(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	threadID, err := params.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	commentID, err := params.ID(c, "commentId")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.threads.DeleteComment(c.Request.Context(), id, threadID, commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Comment deleted")
}
