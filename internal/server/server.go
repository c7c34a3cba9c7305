// Package server exposes the storefront as a JSON API. Every shopper gets
// an independent storefront, identified by the shopzone_shopper cookie.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/DanielWebDeveloper25/e-commerce/internal/catalog"
	"github.com/DanielWebDeveloper25/e-commerce/internal/config"
	"github.com/DanielWebDeveloper25/e-commerce/internal/logging"
	"github.com/DanielWebDeveloper25/e-commerce/internal/shopper"
)

// DefaultAddr is used when the configured listen address is empty.
const DefaultAddr = "127.0.0.1:8080"

const shutdownTimeout = 5 * time.Second

// Server is the HTTP front end over a shopper registry.
type Server struct {
	engine   *gin.Engine
	catalog  *catalog.Catalog
	registry *shopper.Registry
	cfg      config.ServerConfig
	logger   *logging.Logger

	// reapInterval overrides how often idle shoppers are checked.
	reapInterval time.Duration
}

// New builds the router. logger may be nil.
func New(cat *catalog.Catalog, reg *shopper.Registry, cfg config.ServerConfig, logger *logging.Logger) *Server {
	if logger == nil {
		logger = logging.NopLogger()
	}
	s := &Server{
		catalog:  cat,
		registry: reg,
		cfg:      cfg,
		logger:   logger.WithScreen("api"),
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	s.engine = r
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.engine.Group("/api")
	{
		api.GET("/health", Health(s.registry))
		api.GET("/categories", ListCategories())
		api.GET("/products", ListProducts(s.catalog))
		api.GET("/products/:id", GetProduct(s.catalog))
	}

	shop := api.Group("")
	shop.Use(shopperSession(s.registry, s.logger))
	{
		shop.GET("/state", GetState())

		cartGroup := shop.Group("/cart")
		{
			cartGroup.GET("", GetCart())
			cartGroup.DELETE("", ClearCart())
			cartGroup.POST("/items", AddCartItem())
			cartGroup.PATCH("/items/:id", UpdateCartItem())
			cartGroup.DELETE("/items/:id", DeleteCartItem())
		}

		authGroup := shop.Group("/auth")
		{
			authGroup.POST("/login", SignIn("login"))
			authGroup.POST("/signup", SignIn("signup"))
			authGroup.POST("/logout", SignOut())
		}

		checkoutGroup := shop.Group("/checkout")
		{
			checkoutGroup.POST("", PlaceOrder())
			checkoutGroup.POST("/done", ContinueShopping())
		}
	}
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully and
// releases every shopper. Idle shoppers are released periodically when
// idle_minutes is set.
func (s *Server) Run(ctx context.Context) error {
	addr := s.Addr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if s.cfg.IdleMinutes > 0 {
		maxIdle := time.Duration(s.cfg.IdleMinutes) * time.Minute
		go s.reapIdle(ctx, maxIdle, s.reapEvery(maxIdle))
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)

	released := s.registry.ReleaseAll(shopper.ReasonShutdown)
	s.logger.Info("api stopped", "released_shoppers", len(released))
	return err
}

// Addr is the address Run listens on.
func (s *Server) Addr() string {
	if s.cfg.Addr == "" {
		return DefaultAddr
	}
	return s.cfg.Addr
}

func (s *Server) reapEvery(maxIdle time.Duration) time.Duration {
	if s.reapInterval > 0 {
		return s.reapInterval
	}
	return max(maxIdle/2, time.Minute)
}

func (s *Server) reapIdle(ctx context.Context, maxIdle, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ids := s.registry.ReleaseIdle(maxIdle); len(ids) > 0 {
				s.logger.Info("released idle shoppers", "count", len(ids))
			}
		}
	}
}
