package middleware

import (
	"go-pms-backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestID tags every request with an id and stashes a scoped log entry
// in locals for handlers to pick up.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("X-Request-ID", id)
		c.Locals("request_id", id)
		c.Locals("log", logger.L().WithFields(map[string]interface{}{
			"request_id": id,
			"method":     c.Method(),
			"path":       c.Path(),
		}))
		return c.Next()
	}
}
