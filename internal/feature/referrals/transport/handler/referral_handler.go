// Package handler provides the HTTP handlers for referral requests.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"ccps_backend/internal/feature/referrals/domain/entity"
	"ccps_backend/internal/feature/referrals/transport/http/dto"
	"ccps_backend/internal/feature/referrals/usecase"
	"ccps_backend/internal/platform/authz"
	"ccps_backend/internal/platform/http/params"
	"ccps_backend/internal/platform/http/response"
)

// ReferralUsecase is the referral usecase as seen by the handler.
type ReferralUsecase interface {
	List(ctx context.Context, actor authz.Identity) ([]entity.Referral, error)
	Request(ctx context.Context, actor authz.Identity, in usecase.RequestInput) (*entity.Referral, error)
	Provide(ctx context.Context, actor authz.Identity, id uint, link string) (*entity.Referral, error)
	Delete(ctx context.Context, actor authz.Identity, id uint) error
}

// ReferralHandler serves /referrals.
type ReferralHandler struct {
	referrals ReferralUsecase
}

// NewReferralHandler creates a ReferralHandler.
func NewReferralHandler(referrals ReferralUsecase) *ReferralHandler {
	return &ReferralHandler{referrals: referrals}
}

// List handles GET /referrals.
func (h *ReferralHandler) List(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	list, err := h.referrals.List(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"referrals": dto.ToReferralList(list)})
}

// Request handles POST /referrals.
func (h *ReferralHandler) Request(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.RequestReferralReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	r, err := h.referrals.Request(c.Request.Context(), id, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("referral requested", "referral_id", r.ID, "student_id", r.StudentID, "company", r.CompanyName)
	c.JSON(http.StatusCreated, gin.H{"message": "Referral requested", "referral": dto.ToReferralResponse(*r)})
}

// Provide handles PUT /referrals/:id/provide.
func (h *ReferralHandler) Provide(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	refID, err := params.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ProvideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err)
		return
	}
	r, err := h.referrals.Provide(c.Request.Context(), id, refID, req.ReferralLink)
	if err != nil {
		response.Error(c, err)
		return
	}
	slog.Info("referral provided", "referral_id", r.ID, "provided_by", id.UserID)
	c.JSON(http.StatusOK, gin.H{"message": "Referral provided", "referral": dto.ToReferralResponse(*r)})
}

// Delete handles DELETE /referrals/:id.
func (h *ReferralHandler) Delete(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	refID, err := params.ID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.referrals.Delete(c.Request.Context(), id, refID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Referral deleted")
}
