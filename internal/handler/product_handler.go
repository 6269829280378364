package handler

import (
	"go-pms-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

func (h *ProductHandler) Search(c *fiber.Ctx) error {
	term := c.Query("search")
	forType := c.Query("for")
	limit := c.QueryInt("limit", 50)

	products, err := h.service.Search(term, forType, limit)
	if err != nil {
		return respondError(c, "search products", "Failed to fetch products", err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data":    products,
		"search":  term,
		"count":   len(products),
	})
}

func (h *ProductHandler) UnitTypes(c *fiber.Ctx) error {
	types, err := h.service.UnitTypes()
	if err != nil {
		return respondError(c, "list unit types", "Failed to fetch unit types", err)
	}
	return respondOK(c, types)
}
