package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Maspur102/elokalfa/internal/config"
	"github.com/Maspur102/elokalfa/internal/handler"
	"github.com/Maspur102/elokalfa/internal/middleware"
	"github.com/Maspur102/elokalfa/internal/model"
	"github.com/Maspur102/elokalfa/internal/repository"
	"github.com/Maspur102/elokalfa/internal/service"
	"github.com/Maspur102/elokalfa/internal/storage"
	"github.com/Maspur102/elokalfa/internal/ws"
	"github.com/Maspur102/elokalfa/pkg/database"
	"github.com/Maspur102/elokalfa/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Setup Database
	db := database.ConnectDB(cfg.Database.DSN(), cfg.Database.LogLevel)
	if err := db.AutoMigrate(model.Migratables()...); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// 3. Seed default privileges, roles, admin user and store profile
	seedDefaults(db, cfg.Admin)

	// 4. Upload storage and WebSocket hub
	files, err := storage.NewFileStore(cfg.Storage.Root, cfg.Storage.UploadMaxSize)
	if err != nil {
		log.Fatalf("Failed to prepare upload directories: %v", err)
	}
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	txRepo := repository.NewTransactionRepo(db)
	expenseRepo := repository.NewExpenseRepo(db)
	storeRepo := repository.NewStoreRepo(db)
	userRepo := repository.NewUserRepo(db)
	roleRepo := repository.NewRoleRepo(db)

	tokens := jwt.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo, roleRepo)
	settingsService := service.NewSettingsService(storeRepo, files)
	catalogService := service.NewCatalogService(categoryRepo, productRepo, wsHub)
	checkoutService := service.NewCheckoutService(productRepo, txRepo, files, db, wsHub, nil)
	transactionService := service.NewTransactionService(txRepo, productRepo, storeRepo, files, db, wsHub)
	expenseService := service.NewExpenseService(expenseRepo, files, nil)
	reportService := service.NewReportService(txRepo, productRepo, expenseRepo, nil)

	handlers := routeHandlers{
		auth:        handler.NewAuthHandler(authService, cfg.Session.CookieName, cfg.Session.Secure),
		user:        handler.NewUserHandler(userService),
		role:        handler.NewRoleHandler(userService),
		settings:    handler.NewSettingsHandler(settingsService),
		category:    handler.NewCategoryHandler(catalogService),
		product:     handler.NewProductHandler(catalogService),
		cashier:     handler.NewCashierHandler(checkoutService),
		transaction: handler.NewTransactionHandler(transactionService),
		expense:     handler.NewExpenseHandler(expenseService),
		dashboard:   handler.NewDashboardHandler(reportService),
	}

	loginLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
		PerMinute: cfg.RateLimit.LoginPerMinute,
		BurstSize: cfg.RateLimit.LoginBurst,
	})
	defer loginLimiter.Stop()

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName:   cfg.App.Name,
		BodyLimit: int(cfg.Storage.UploadMaxSize) + 1<<20,
	})

	// Middleware
	app.Use(recover.New())   // Panic recovery
	app.Use(requestid.New()) // X-Request-ID
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(corsConfig(cfg.CORS.AllowedOrigins)))

	// 7. Routes
	requireAuth := middleware.RequireAuth(authService, cfg.Session.CookieName)
	registerRoutes(app, handlers, requireAuth, loginLimiter.Handler(), cfg.Storage.Root, wsHub)

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.App.Port); err != nil {
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

// corsConfig allows credentials only for explicit origins; "*" cannot carry the session cookie.
func corsConfig(origins []string) cors.Config {
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		return cors.Config{AllowOrigins: "*"}
	}
	return cors.Config{AllowOrigins: strings.Join(origins, ","), AllowCredentials: true}
}
