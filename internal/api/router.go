package api

import (
	"agri_commerce/internal/middleware" // Custom package for middleware
	"agri_commerce/internal/utils"      // Response cache and credentials

	"github.com/gin-gonic/gin" // Gin web framework
)

// Store is everything the handlers need from the data store gateway
type Store interface {
	Pinger
	UserStore
	ProductStore
	OrderStore
	PaymentStore
}

// Options holds the collaborators of the router
type Options struct {
	Store          Store              // Data store gateway
	Cache          *utils.Cache       // List cache, nil disables caching
	Credentials    *utils.Credentials // Login credentials
	Limiter        middleware.Limiter // Rate limiter, nil disables limiting
	CORSOrigins    []string           // Allowed CORS origins
	TrustedProxies []string           // Proxies trusted for client IP resolution
	IsProd         bool               // Enables HSTS
}

// NewRouter builds the Gin engine with middleware and every route
func NewRouter(opts Options) (*gin.Engine, error) {
	registerValidators()

	r := gin.New() // Gin router instance
	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, err
	}
	r.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(),
		middleware.SecurityHeadersMiddleware(opts.IsProd),
		middleware.CORSMiddleware(opts.CORSOrigins),
	)
	// Rate limiting runs ahead of every route
	if opts.Limiter != nil {
		r.Use(middleware.RateLimitMiddleware(opts.Limiter))
	}

	s, cache := opts.Store, opts.Cache
	r.GET("/", RootHandler())          // Plaintext status
	r.GET("/health", HealthHandler(s)) // Store reachability

	api := r.Group("/api")

	users := api.Group("/users")
	users.GET("", ListUsersHandler(s, cache))
	users.POST("", CreateUserHandler(s, cache))
	users.PUT("", UpdateUserHandler(s, cache))
	users.DELETE("", DeleteUserHandler(s, cache))

	products := api.Group("/products")
	products.GET("", ListProductsHandler(s, cache))
	products.POST("", CreateProductHandler(s, cache))
	products.PUT("", UpdateProductHandler(s, cache))
	products.DELETE("", DeleteProductHandler(s, cache))

	orders := api.Group("/orders")
	orders.GET("", ListOrdersHandler(s, cache))
	orders.POST("", CreateOrderHandler(s, cache))
	orders.PUT("", UpdateOrderHandler(s, cache))
	orders.DELETE("", DeleteOrderHandler(s, cache))

	payments := api.Group("/payments")
	payments.GET("", ListPaymentsHandler(s, cache))
	payments.GET("/:id", GetPaymentHandler(s))
	payments.POST("", CreatePaymentHandler(s, cache))
	payments.PUT("/:id", UpdatePaymentHandler(s, cache))
	payments.DELETE("/:id", DeletePaymentHandler(s, cache))

	api.POST("/auth/login", LoginHandler(opts.Credentials)) // Static credential check

	return r, nil
}
