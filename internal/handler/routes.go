package handler

import (
	"go-pms-backend/internal/repository"
	"go-pms-backend/internal/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services, and handlers onto the app.
func RegisterRoutes(app *fiber.App, db *gorm.DB) {
	docRepo := repository.NewDocumentRepo(db)
	productRepo := repository.NewProductRepo(db)

	docService := service.NewDocumentService(docRepo, productRepo, db)
	productService := service.NewProductService(productRepo)

	health := NewHealthHandler(db)
	products := NewProductHandler(productService)
	boms := NewBOMHandler(docService)
	issues := NewIssueHandler(docService)
	receives := NewReceiveHandler(docService)
	vouchers := NewVoucherHandler(docService)

	app.Get("/health", health.Check)
	app.Get("/products", products.Search)
	app.Get("/unit-types", products.UnitTypes)

	app.Get("/boms", boms.List)
	app.Post("/boms", boms.Create)
	app.Get("/boms/:id", boms.Show)
	app.Put("/boms/:id", boms.Update)

	app.Get("/issues", issues.List)
	app.Post("/issues", issues.Create)
	app.Get("/issues/:id", issues.Show)
	app.Put("/issues/:id", issues.Update)

	app.Get("/receives", receives.List)
	app.Post("/receives", receives.Create)
	app.Get("/receives/:id", receives.Show)
	app.Put("/receives/:id", receives.Update)

	app.Get("/vouchers", vouchers.List)
	app.Post("/vouchers", vouchers.Create)
	app.Get("/vouchers/:id", vouchers.Show)
	app.Put("/vouchers/:id", vouchers.Update)
}
