package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-pms-backend/internal/handler"
	"go-pms-backend/internal/middleware"
	"go-pms-backend/internal/model"
	"go-pms-backend/pkg/database"
	"go-pms-backend/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	db := database.ConnectDB()
	// Auto migrate for dev convenience; production schemas should be managed
	// with a separate migration tool.
	db.AutoMigrate(
		&model.Product{},
		&model.BOM{}, &model.BOMItem{},
		&model.Issue{}, &model.IssueItem{},
		&model.Receive{}, &model.ReceiveItem{},
		&model.StockVoucher{}, &model.StockVoucherItem{},
	)

	app := fiber.New(fiber.Config{
		AppName: "Production Management Backend v1.0",
	})

	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestID())

	handler.RegisterRoutes(app, db)

	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.L().Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.L().Info("Server exited")
}
