// Package handler serves the placement dashboard.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"ccps_backend/internal/feature/stats/domain/entity"
	"ccps_backend/internal/feature/stats/transport/http/dto"
	"ccps_backend/internal/platform/authz"
	"ccps_backend/internal/platform/http/response"
)

type StatsUsecase interface {
	Overview(ctx context.Context, actor authz.Identity) (*entity.Overview, error)
}

type StatsHandler struct {
	stats StatsUsecase
}

func NewStatsHandler(stats StatsUsecase) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Overview handles GET /stats.
func (h *StatsHandler) Overview(c *gin.Context) {
	id, err := authz.FromContext(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	o, err := h.stats.Overview(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStatsResponse(o))
}
