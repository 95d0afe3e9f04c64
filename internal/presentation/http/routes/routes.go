package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pastesytony/pos-api/internal/config"
	"github.com/pastesytony/pos-api/internal/domain/entity"
	domainRepo "github.com/pastesytony/pos-api/internal/domain/repository"
	"github.com/pastesytony/pos-api/internal/presentation/http/handler"
	"github.com/pastesytony/pos-api/internal/presentation/http/middleware"
	"github.com/pastesytony/pos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth    *handler.AuthHandler
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
	Sale    *handler.SaleHandler
	Report  *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (register session required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-branch rate limiter
		rateLimiter := middleware.NewBranchRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		// Replay protection for the money-moving endpoints
		idempotency := middleware.Idempotency(deps.IdempotencyRepo)

		registerProtectedRoutes(protected, h, idempotency)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, idempotency gin.HandlerFunc) {
	protected.GET("/auth/me", h.Auth.Me)
	protected.POST("/auth/logout", h.Auth.Logout)

	// Catalog
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.GET("/categories", h.Product.Categories)
		products.GET("/:id", h.Product.Get)
		products.PATCH("/:id/availability", middleware.RequireRole(entity.RoleAdmin, entity.RoleManager), h.Product.SetAvailability)
		products.PATCH("/:id/price", middleware.RequireRole(entity.RoleAdmin, entity.RoleManager), h.Product.UpdatePrice)
	}

	// Cart
	cart := protected.Group("/cart")
	{
		cart.GET("", h.Cart.Get)
		cart.DELETE("", h.Cart.Clear)
		cart.POST("/items", h.Cart.AddItem)
		cart.PUT("/items", h.Cart.SetQuantity)
		cart.POST("/items/:product_id/increment", h.Cart.IncrementItem)
		cart.POST("/items/:product_id/decrement", h.Cart.DecrementItem)
		cart.DELETE("/items/:product_id", h.Cart.RemoveItem)
	}

	// Orders
	orders := protected.Group("/orders")
	{
		orders.POST("", idempotency, h.Order.Create)
		orders.GET("", h.Order.List)
		orders.GET("/active", h.Order.ListActive)
		orders.GET("/:id", h.Order.Get)
		orders.PATCH("/:id/status", h.Order.UpdateStatus)
		orders.POST("/:id/deliver", idempotency, h.Order.Deliver)
		orders.POST("/:id/cancel", h.Order.Cancel)
	}

	// Sales ledger
	sales := protected.Group("/sales")
	{
		sales.POST("/checkout", idempotency, h.Sale.Checkout)
		sales.GET("/today", h.Sale.ListToday)
		sales.GET("/mine", h.Sale.ListMine)
		sales.GET("/:id", h.Sale.Get)
	}

	// Register reports
	register := protected.Group("/register")
	{
		register.GET("/summary", h.Report.Summary)
		register.POST("/close-shift", middleware.RequireRole(entity.RoleAdmin, entity.RoleManager), h.Report.CloseShift)
	}
}
