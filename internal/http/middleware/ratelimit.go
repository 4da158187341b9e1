package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// RateLimit allows limit requests per client IP in each fixed window. A
// non-positive limit disables limiting.
func RateLimit(limit int, window time.Duration) fiber.Handler {
	if limit <= 0 {
		return Noop()
	}
	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: window,
		Next: func(c *fiber.Ctx) bool {
			switch c.Path() {
			case "/health", "/healthz", "/metrics":
				return true
			}
			return false
		},
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, "Too many requests, please try again later")
		},
	})
}
