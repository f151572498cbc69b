package serverutils

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware enforces a fixed-window per-client limit backed by
// Redis. The window key is client IP plus the current minute; if Redis is
// unreachable the request is allowed through rather than failing closed.
func RateLimitMiddleware(rdb *redis.Client, perMinute int) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if perMinute <= 0 || rdb == nil {
			return ctx.Next()
		}

		key := fmt.Sprintf("ratelimit:%s:%d", ctx.IP(), time.Now().Unix()/60)

		count, err := rdb.Incr(ctx.Context(), key).Result()
		if err != nil {
			return ctx.Next()
		}
		if count == 1 {
			rdb.Expire(ctx.Context(), key, time.Minute)
		}

		if count > int64(perMinute) {
			return ctx.Status(fiber.StatusTooManyRequests).JSON(errorBody{
				Success: false,
				Message: "Rate limit exceeded, try again shortly",
			})
		}
		return ctx.Next()
	}
}
