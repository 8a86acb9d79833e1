// Package ratelimiter はクライアントがエンドポイントを呼べる頻度を制限します。
package ratelimiter

import (
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"ccps_backend/internal/platform/http/response"
)

type window struct {
	count     int
	lastReset time.Time
}

// RateLimiterは、キーごとの固定ウィンドウでリクエスト頻度を制限します。
type RateLimiter struct {
	limit    int           // interval あたりの上限
	interval time.Duration // どの単位でリセットするか

	mu        sync.Mutex
	windows   map[string]*window
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiterは、キーごとに interval あたり limit 回まで許可するRateLimiterを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		windows:   make(map[string]*window),
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Allow は key の呼び出しを1回数え、上限内かどうかを返します。
// 上限を超えた場合は、ウィンドウがリセットされるまでの時間も返します。
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	// 古いウィンドウの掃除は interval ごとに一度だけ
	if now.Sub(rl.lastSweep) >= rl.interval {
		rl.sweep(now)
		rl.lastSweep = now
	}

	w, ok := rl.windows[key]
	// interval を過ぎたらカウントリセット
	if !ok || now.Sub(w.lastReset) >= rl.interval {
		w = &window{lastReset: now}
		rl.windows[key] = w
	}

	w.count++
	if w.count > rl.limit {
		return false, rl.interval - now.Sub(w.lastReset)
	}
	return true, 0
}

// sweepは、リセット済みのウィンドウを削除します。
func (rl *RateLimiter) sweep(now time.Time) {
	for k, w := range rl.windows {
		if now.Sub(w.lastReset) >= rl.interval {
			delete(rl.windows, k)
		}
	}
}

// Middlewareは、クライアントIPごとに上限を超えたリクエストを429で拒否します。
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retry := rl.Allow(c.FullPath() + "|" + c.ClientIP())
		if !ok {
			slog.Warn("rate limit hit", "path", c.FullPath(), "remote_addr", c.ClientIP(), "limit", rl.limit)
			secs := int(retry.Round(time.Second) / time.Second)
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.ErrorResponse{Message: "too many requests, try again later"})
			return
		}
		c.Next()
	}
}
