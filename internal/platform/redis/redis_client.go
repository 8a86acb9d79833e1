package redis

import (
	"context"
	"log/slog"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options は接続先のRedisサーバーを指定します。
type Options struct {
	Host     string
	Port     string
	Password string
}

// NewRedisClient はRedisに接続し、PINGで疎通を確認します。
func NewRedisClient(ctx context.Context, opts Options) (*redis.Client, error) {
	addr := net.JoinHostPort(opts.Host, opts.Port)

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: opts.Password,
		DB:       0,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		_ = rdb.Close()
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
