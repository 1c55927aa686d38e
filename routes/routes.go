package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"bellezamay-cart/cart"
	"bellezamay-cart/catalog"
	"bellezamay-cart/handlers"
	"bellezamay-cart/logger"
	"bellezamay-cart/middleware"
	"bellezamay-cart/storage"
)

const addItemPath = "/api/cart/items"

func SetupRoutes(r *gin.Engine, snapshots storage.SnapshotStore, renderer cart.Renderer, paymentLink string, log *logger.Logger) {
	// Initialize handlers
	cartHandler := &handlers.CartHandler{Snapshots: snapshots, Renderer: renderer, Log: log}
	checkoutHandler := &handlers.CheckoutHandler{Snapshots: snapshots, Renderer: renderer, PaymentLink: paymentLink, Log: log}
	catalogHandler := &handlers.CatalogHandler{Scanner: catalog.NewScanner(addItemPath)}

	checkoutLimiter := middleware.NewRateLimiter(10, time.Minute)

	api := r.Group("/api")
	api.Use(middleware.SessionMiddleware())
	{
		// Cart panel and state
		api.GET("/cart", cartHandler.GetCart)
		api.GET("/cart/panel", cartHandler.GetPanel)
		api.GET("/cart/badge", cartHandler.GetBadge)

		// Cart mutations
		api.POST("/cart/items", cartHandler.AddToCart)
		api.PUT("/cart/items/:index", cartHandler.UpdateQuantity)
		api.DELETE("/cart/items/:index", cartHandler.RemoveFromCart)
		api.DELETE("/cart", cartHandler.ClearCart)

		// Payment handoff
		api.POST("/checkout", checkoutLimiter.Middleware(), checkoutHandler.Checkout)

		// Listing wiring
		api.POST("/catalog/wire", catalogHandler.WireListing)
		api.POST("/catalog/scan", catalogHandler.ScanListing)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
