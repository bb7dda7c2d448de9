// Package stubserver is an in-memory implementation of the storefront
// backend's REST surface. It backs the SDK's integration tests and local
// development; it enforces the same auth, envelope, and status-code contract
// as production while keeping all business state in process memory.
package stubserver

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/tirtanusa/storefront-go/internal/core/domain"
)

// Config carries the stub's runtime settings.
type Config struct {
	JWTSecret string
	TokenTTL  time.Duration
	Logger    zerolog.Logger
	// Metrics enables the echoprometheus middleware and the /metrics
	// endpoint. Off in tests to avoid duplicate collector registration.
	Metrics bool
}

// Server owns the in-memory state and the route handlers.
type Server struct {
	store     *memStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

// New builds the Echo application with all routes registered.
func New(cfg Config) (*Server, *echo.Echo) {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	s := &Server{
		store:     newMemStore(),
		jwtSecret: cfg.JWTSecret,
		tokenTTL:  ttl,
		log:       cfg.Logger,
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = newHTTPErrorHandler(cfg.Logger)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	if cfg.Metrics {
		e.Use(echoprometheus.NewMiddleware("storefront_stub"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")

	api.POST("/auth/register", s.handleRegister)
	api.POST("/auth/login", s.handleLogin)

	auth := api.Group("", s.authMiddleware)
	admin := requireRole(domain.RoleAdmin)

	auth.GET("/auth/users", s.handleListUsers, admin)
	auth.GET("/auth/profile", s.handleProfile)
	auth.PUT("/auth/users/:id/toggle-status", s.handleToggleUserStatus, admin)

	auth.GET("/customers/profile", s.handleGetCustomerProfile)
	auth.POST("/customers/profile-user", s.handleUpsertCustomerProfile)
	auth.GET("/customers/profiles", s.handleListCustomerProfiles, admin)
	auth.GET("/organizations/profile-org", s.handleGetOrganizationProfile)
	auth.POST("/organizations/profile-org-personalisasi", s.handleUpsertOrganizationProfile)
	auth.GET("/organizations/all-profiles-org", s.handleListOrganizationProfiles, admin)

	api.GET("/products/allproduct", s.handleListProducts)
	api.GET("/products/:id", s.handleGetProduct)

	auth.GET("/cart", s.handleGetCart)
	auth.POST("/cart/add", s.handleAddToCart)
	auth.PUT("/cart/update", s.handleUpdateCartQuantity)
	auth.DELETE("/cart/item/:id", s.handleRemoveFromCart)
	auth.DELETE("/cart/clear", s.handleClearCart)
	auth.GET("/cart/validate", s.handleValidateCart)

	auth.POST("/orders", s.handleCreateOrder)
	auth.GET("/orders", s.handleListOrders)
	auth.GET("/orders/customer/:id", s.handleListCustomerOrders)
	auth.GET("/orders/:id", s.handleGetOrder)
	auth.PUT("/orders/:id/status", s.handleUpdateOrderStatus, admin)
	auth.PUT("/orders/:id/payment", s.handleUpdatePaymentStatus, admin)

	auth.POST("/deliveries", s.handleCreateDelivery, admin)
	auth.GET("/deliveries/order/:id", s.handleGetDeliveryByOrder)
	auth.GET("/deliveries/driver/:name", s.handleListDriverDeliveries)
	auth.GET("/deliveries/:id", s.handleGetDelivery)
	auth.PUT("/deliveries/:id/status", s.handleUpdateDeliveryStatus, admin)
	auth.GET("/deliveries", s.handleListDeliveries, admin)

	auth.POST("/replenishments", s.handleCreateReplenishment, admin)
	auth.GET("/replenishments/status/:id", s.handleReplenishmentStatus, admin)
	auth.PUT("/replenishments/stock/:location/:product", s.handleUpdateStockLevels, admin)
	auth.GET("/replenishments/low-stock", s.handleListLowStock, admin)
	auth.GET("/replenishments/stock-out/:id", s.handleStockOutHistory, admin)
	auth.PUT("/replenishments/:id/complete", s.handleCompleteReplenishment, admin)

	auth.GET("/notifications/user", s.handleUserNotifications)
	auth.GET("/notifications/location/:id", s.handleLocationNotifications)

	return s, e
}

// errorResponse is the canonical error envelope the stub renders, matching
// the shape the gateway parses.
type errorResponse struct {
	Message string `json:"message"`
}

// newHTTPErrorHandler maps known errors to their status codes, logs
// unexpected ones, and renders a consistent JSON envelope.
func newHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, errorResponse{Message: fmt.Sprintf("%v", he.Message)})
			return
		}

		if errors.Is(err, domain.ErrInvalidDeliveryTransition) {
			_ = c.JSON(http.StatusUnprocessableEntity, errorResponse{Message: err.Error()})
			return
		}

		log.Error().Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")
		_ = c.JSON(http.StatusInternalServerError, errorResponse{Message: "internal server error"})
	}
}
