package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"bellezamay-cart/config"
	"bellezamay-cart/database"
	"bellezamay-cart/logger"
	"bellezamay-cart/middleware"
	"bellezamay-cart/render"
	"bellezamay-cart/routes"
	"bellezamay-cart/storage"
)

func main() {
	// Load environment variables
	if err := config.LoadEnv(); err != nil {
		log.Fatal("Error loading .env file:", err)
	}

	// Validate critical environment variables
	if err := config.ValidateEnv(); err != nil {
		log.Fatal("Environment validation failed: ", err)
	}

	zl, err := logger.NewLogger(config.GetEnv("LOG_LEVEL", "info"))
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zl.Sync()

	// Snapshot storage: durable when a database is configured, in-memory
	// otherwise (carts then live as long as the process).
	var snapshots storage.SnapshotStore
	if os.Getenv("DATABASE_URL") != "" {
		db, err := database.Connect()
		if err != nil {
			log.Fatal("Failed to connect to database:", err)
		}
		if err := database.Migrate(db); err != nil {
			log.Fatal("Failed to run migrations:", err)
		}
		snapshots = storage.NewGormStore(db, zl)
		defer func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}()
	} else {
		zl.Warn("no DATABASE_URL configured, carts persist in memory only")
		snapshots = storage.NewMemoryStore(30*24*time.Hour, time.Hour)
	}

	// Setup Gin router
	gin.SetMode(config.GetEnv("GIN_MODE", gin.ReleaseMode))
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zl))

	// CORS configuration - the panel fragments are fetched by the storefront
	origins := []string{os.Getenv("FRONTEND_URL")}
	var filteredOrigins []string
	for _, o := range origins {
		if o != "" {
			filteredOrigins = append(filteredOrigins, o)
		}
	}
	if len(filteredOrigins) == 0 {
		filteredOrigins = []string{"http://localhost:3000"}
		zl.Warn("no CORS origins configured, defaulting to http://localhost:3000")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     filteredOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Cart-Count", "X-Promo-Count"},
		AllowCredentials: true,
	}))

	// Setup routes
	paymentLink := config.GetEnv("PAYMENT_LINK_URL", config.DefaultPaymentLink)
	routes.SetupRoutes(r, snapshots, render.NewPanelRenderer(), paymentLink, zl)

	// Start server with graceful shutdown
	port := config.GetEnv("PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// Run server in a goroutine
	go func() {
		zl.Info("server starting", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down server")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	zl.Info("server exited gracefully")
}
