package middleware

import "github.com/gofiber/fiber/v2"

// Noop passes the request through. It stands in for optional middleware that
// is switched off by configuration.
func Noop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.Next()
	}
}
