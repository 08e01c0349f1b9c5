package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"canteen-inventory-api/internal/handler"
	"canteen-inventory-api/internal/middleware"
	"canteen-inventory-api/internal/model"
	"canteen-inventory-api/internal/repository"
	"canteen-inventory-api/internal/service"
	"canteen-inventory-api/pkg/database"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Inventory{},
		&model.ActivityLog{},
		&model.Alert{},
	)

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)
	inventoryRepo := repository.NewInventoryRepo(db)
	logRepo := repository.NewActivityLogRepo(db)
	alertRepo := repository.NewAlertRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	productService := service.NewProductService(productRepo, db)
	inventoryService := service.NewInventoryService(productRepo, inventoryRepo, db)
	alertService := service.NewAlertService(alertRepo)
	dashService := service.NewDashboardService(productRepo, inventoryRepo, alertRepo, logRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	alertHandler := handler.NewAlertHandler(alertService)
	dashHandler := handler.NewDashboardHandler(dashService)
	logHandler := handler.NewLogHandler(logRepo)

	// 5. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Canteen Inventory API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 6. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)

	// ============ PROTECTED ROUTES ============
	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth())

	protected.Get("/dashboard/stats", dashHandler.GetDashboardStats)

	protected.Get("/products", productHandler.GetProducts)
	protected.Post("/products", productHandler.CreateProduct)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Put("/products/:id", productHandler.UpdateProduct)
	protected.Delete("/products/:id", productHandler.DeleteProduct)

	protected.Get("/inventory", inventoryHandler.GetInventory)
	protected.Post("/inventory", inventoryHandler.CreateInventory)
	protected.Get("/inventory/:id", inventoryHandler.GetInventoryItem)
	protected.Put("/inventory/:id", inventoryHandler.UpdateInventory)
	protected.Delete("/inventory/:id", inventoryHandler.DeleteInventory)

	// mark-all-read must register before :id/mark-read
	protected.Get("/alerts", alertHandler.GetAlerts)
	protected.Put("/alerts/mark-all-read", alertHandler.MarkAllRead)
	protected.Put("/alerts/:id/mark-read", alertHandler.MarkRead)

	protected.Put("/profile/change-password", authHandler.ChangePassword)

	// ============ ADMIN ROUTES ============
	admin := protected.Group("", middleware.RequireAdmin())
	admin.Post("/register", userHandler.Register)
	admin.Get("/users", userHandler.GetUsers)
	admin.Get("/logs", logHandler.GetLogs)

	// 7. Graceful Shutdown
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

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin user if no account with that name exists
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByUsername("admin"); err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Username: "admin",
		Role:     model.RoleAdmin,
	}
	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("✅ Admin user created: admin (admin role)")
	}
}
