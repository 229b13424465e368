package middleware

import (
	"context"
	"fmt"
	"time"

	"foodcourt/internal/observability"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// CheckRateLimit reports whether the caller identified by id may perform
// another request against resource within the window. Limiting is skipped in
// test and development environments, and a missing Redis client fails open.
func CheckRateLimit(ctx context.Context, rdb *redis.Client, resource, id string, limit int, window time.Duration) (bool, error) {
	env := "development"
	if cfg != nil && cfg.Env != "" {
		env = cfg.Env
	}
	switch env {
	case "test", "development":
		return true, nil
	}

	if rdb == nil {
		return true, nil
	}

	key := fmt.Sprintf("rl:%s:%s", resource, id)

	cnt, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if cnt == 1 {
		rdb.Expire(ctx, key, window)
	}
	if cnt > int64(limit) {
		return false, nil
	}
	return true, nil
}

// RateLimit returns a middleware enforcing limit requests per window against
// the named resource. It keys by authenticated user id when present and by
// remote IP otherwise. Redis errors fail open.
func RateLimit(rdb *redis.Client, limit int, window time.Duration, resource string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := "ip:" + c.IP()
		if uid := UserID(c); uid != "" {
			id = "user:" + uid
		}

		allowed, err := CheckRateLimit(c.UserContext(), rdb, resource, id, limit, window)
		if err != nil {
			return c.Next()
		}
		if !allowed {
			observability.RateLimitRejections.WithLabelValues(resource).Inc()
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "rate limit exceeded",
			})
		}
		return c.Next()
	}
}
