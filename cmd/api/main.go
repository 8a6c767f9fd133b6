package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-gestion-stock/internal/handler"
	"go-gestion-stock/internal/middleware"
	"go-gestion-stock/internal/model"
	"go-gestion-stock/internal/repository"
	"go-gestion-stock/internal/service"
	"go-gestion-stock/internal/ws"
	"go-gestion-stock/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
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
	db.AutoMigrate(&model.User{}, &model.Product{}, &model.Client{}, &model.Vente{}, &model.VenteItem{}, &model.Retour{})

	// 3. Seed default commercial account on an empty database
	seedDefaultUser(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	userRepo := repository.NewUserRepo(db)
	productRepo := repository.NewProductRepo(db)
	clientRepo := repository.NewClientRepo(db)
	venteRepo := repository.NewVenteRepo(db)
	retourRepo := repository.NewRetourRepo(db)
	statsRepo := repository.NewStatsRepo(db)

	authService := service.NewAuthService(userRepo)
	productService := service.NewProductService(productRepo, db, wsHub)
	clientService := service.NewClientService(clientRepo, db)
	venteService := service.NewVenteService(venteRepo, productRepo, clientRepo, db, wsHub)
	retourService := service.NewRetourService(retourRepo, productRepo, db, wsHub)
	dashService := service.NewDashboardService(statsRepo)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	clientHandler := handler.NewClientHandler(clientService)
	venteHandler := handler.NewVenteHandler(venteService)
	retourHandler := handler.NewRetourHandler(retourService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 6. Setup Fiber
	engine := html.New("./views", ".html")
	engine.AddFunc("mul", func(price float64, qty int) float64 {
		return price * float64(qty)
	})
	app := fiber.New(fiber.Config{
		AppName: "Gestion Stock API v1.0",
		Views:   engine,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api")

	// Health check (unauthenticated)
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "message": "API de Gestion de Stock"})
	})

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/register", middleware.RequireAuth(), middleware.RequireRole(model.RoleCommercial), authHandler.Register)
	auth.Get("/me", middleware.RequireAuth(), authHandler.Me)
	auth.Get("/users", middleware.RequireAuth(), middleware.RequireRole(model.RoleCommercial), authHandler.GetUsers)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth())

	// Dashboard Routes
	protected.Get("/dashboard/stats", dashHandler.GetStats)
	protected.Get("/dashboard/ventes-par-jour", dashHandler.GetVentesParJour)

	// Product Routes
	protected.Get("/products", productHandler.GetProducts)
	protected.Post("/products", productHandler.CreateProduct)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Put("/products/:id", productHandler.UpdateProduct)
	protected.Delete("/products/:id", productHandler.DeleteProduct)

	// Client Routes
	protected.Get("/clients", clientHandler.GetClients)
	protected.Post("/clients", clientHandler.CreateClient)
	protected.Get("/clients/:id", clientHandler.GetClient)
	protected.Put("/clients/:id", clientHandler.UpdateClient)
	protected.Delete("/clients/:id", clientHandler.DeleteClient)

	// Vente Routes
	protected.Get("/ventes", venteHandler.GetVentes)
	protected.Post("/ventes", venteHandler.CreateVente)
	protected.Get("/ventes/:id", venteHandler.GetVente)
	protected.Patch("/ventes/:id/print", venteHandler.MarkPrinted)
	protected.Get("/ventes/:id/invoice", venteHandler.Invoice)

	// Retour Routes
	protected.Get("/retours", retourHandler.GetRetours)
	protected.Post("/retours", retourHandler.CreateRetour)
	protected.Get("/retours/:id", retourHandler.GetRetour)
	protected.Delete("/retours/:id", retourHandler.DeleteRetour)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedDefaultUser creates the default commercial account when the users
// table is empty, so a fresh install can log in.
func seedDefaultUser(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	count, err := userRepo.Count()
	if err != nil {
		log.Printf("Warning: Failed to count users: %v", err)
		return
	}
	if count > 0 {
		return
	}

	admin := &model.User{
		Username: "admin",
		Role:     model.RoleCommercial,
		Nom:      "Admin",
		Prenom:   "Commercial",
	}
	if err := admin.SetPassword("admin123"); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create default user: %v", err)
	} else {
		log.Println("Default commercial user created: admin / admin123")
	}
}
