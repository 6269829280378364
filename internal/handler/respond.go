package handler

import (
	"errors"
	"os"
	"strconv"

	"go-pms-backend/internal/apperr"
	"go-pms-backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Every endpoint answers with the same envelope:
// {success, data?, message?, errors?, error?}. These helpers are the only
// place that shape is built.

func respondOK(c *fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func respondCreated(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func respondUpdated(c *fiber.Ctx, message string, data any) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func respondBadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func respondValidation(c *fiber.Ctx, fields map[string][]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed",
		"errors":  fields,
	})
}

// respondError maps the error taxonomy to status codes. Persistence failures
// are logged with full context; the response carries the diagnostic only
// outside production.
func respondError(c *fiber.Ctx, op, failMessage string, err error) error {
	var verr *apperr.ValidationError
	if errors.As(err, &verr) {
		return respondValidation(c, verr.Fields)
	}

	var nferr *apperr.NotFoundError
	if errors.As(err, &nferr) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": nferr.Error(),
		})
	}

	logEntry(c).WithFields(logrus.Fields{"op": op}).WithError(err).Error(failMessage)

	body := fiber.Map{"success": false, "message": failMessage}
	if os.Getenv("APP_ENV") != "production" {
		body["error"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}

func logEntry(c *fiber.Ctx) *logrus.Entry {
	if entry, ok := c.Locals("log").(*logrus.Entry); ok {
		return entry
	}
	return logrus.NewEntry(logger.L())
}

func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
