package handler

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check always answers 200 so load balancers can read the database state
// from the body instead of the status code.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	service := os.Getenv("APP_NAME")
	if service == "" {
		service = "production-management-backend"
	}

	database := fiber.Map{
		"status":     "up",
		"connection": h.db.Name(),
	}
	status := "ok"

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		status = "degraded"
		database["status"] = "down"
		database["error"] = err.Error()
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    status,
		"service":   service,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  database,
	})
}
