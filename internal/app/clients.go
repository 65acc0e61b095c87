package app

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yungbote/recorddesk-backend/internal/logger"
)

// newRedisClient returns nil when no address is configured or the server is
// unreachable; the stat cache degrades to direct store reads either way.
func newRedisClient(log *logger.Logger, cfg Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unreachable, stat cache disabled", "addr", cfg.RedisAddr, "error", err)
		_ = client.Close()
		return nil
	}
	log.Info("Redis connected", "addr", cfg.RedisAddr)
	return client
}
