// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger は到達可能かどうかを報告できる依存先です。
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler は /health を処理します。
type HealthHandler struct {
	deps map[string]Pinger
}

// NewHealthHandler は指定された依存先を確認するHealthHandlerを生成します。
func NewHealthHandler(deps map[string]Pinger) *HealthHandler {
	return &HealthHandler{deps: deps}
}

// Health はすべての依存先が応答すれば200、そうでなければ503を返します。
// HEADはステータスコードのみ、OPTIONSは常に204を返します。
func (h *HealthHandler) Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusNoContent)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := make(map[string]string, len(h.deps))
	for name, dep := range h.deps {
		if err := dep.PingContext(ctx); err != nil {
			slog.Error("health check failed", "dependency", name, "error", err)
			checks[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "up"
	}

	if c.Request.Method == http.MethodHead {
		c.Status(status)
		return
	}
	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}
	c.JSON(status, gin.H{"status": overall, "checks": checks})
}
