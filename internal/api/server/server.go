package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/gemveer/inventory/internal/api/middleware"
	"github.com/gemveer/inventory/internal/api/rest"
	"github.com/gemveer/inventory/internal/api/shared/executor"
	"github.com/gemveer/inventory/internal/auth"
	"github.com/gemveer/inventory/internal/identity"
	"github.com/gemveer/inventory/internal/logger"
	"github.com/gemveer/inventory/internal/messaging"
	"github.com/gemveer/inventory/internal/packetnum"
	"github.com/gemveer/inventory/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	JWTSecret    string
	TokenTTL     time.Duration
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	store      store.Store
	publisher  messaging.Publisher
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, dataStore store.Store, publisher messaging.Publisher) *Server {
	return &Server{
		config:    cfg,
		store:     dataStore,
		publisher: publisher,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	tokens := auth.NewTokenIssuer(s.config.JWTSecret, s.config.TokenTTL)

	// Setup middleware. The requester middleware builds the authenticated
	// identity once; everything downstream takes it as given.
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())
	router.Use(middleware.Requester(tokens))

	// Create shared executor (contains all business logic)
	resolver := identity.NewResolver(s.store)
	exec := executor.NewExecutor(s.store, resolver, s.publisher, packetnum.NewGenerator(), tokens)

	// Create REST handler and routes
	restHandler := rest.NewHandler(exec)
	rest.SetupRoutes(router, restHandler)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
