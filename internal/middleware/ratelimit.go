package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/bilgisen/nexus/internal/logger"
)

// ContactLimiter allows max requests per client IP per window. A max of zero
// disables limiting.
func ContactLimiter(max int, window time.Duration) fiber.Handler {
	if max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			logger.Get().Warn().
				Str("ip", c.IP()).
				Str("path", c.Path()).
				Msg("Contact rate limit reached")

			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many submissions. Please try again later.",
			})
		},
	})
}
