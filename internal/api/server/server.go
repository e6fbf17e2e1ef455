package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/celo-academy/academy-engine/internal/api/middleware"
	"github.com/celo-academy/academy-engine/internal/api/rest"
	"github.com/celo-academy/academy-engine/internal/domain"
	"github.com/celo-academy/academy-engine/internal/enrollment"
	"github.com/celo-academy/academy-engine/internal/executor"
	"github.com/celo-academy/academy-engine/internal/logger"
	"github.com/celo-academy/academy-engine/internal/oracle"
	"github.com/celo-academy/academy-engine/internal/session"
	"github.com/celo-academy/academy-engine/internal/sponsorship"
	"github.com/celo-academy/academy-engine/internal/store"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Chain        domain.Chain
	Auth         middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	mirror     store.Store
	courses    enrollment.Service
	sessions   session.Manager
	exec       executor.Executor
	oracle     oracle.Oracle
	registry   sponsorship.Registry
	httpServer *http.Server
}

// New creates a new API server
func New(
	cfg Config,
	mirror store.Store,
	courses enrollment.Service,
	sessions session.Manager,
	exec executor.Executor,
	orc oracle.Oracle,
	registry sponsorship.Registry,
) *Server {
	return &Server{
		config:   cfg,
		mirror:   mirror,
		courses:  courses,
		sessions: sessions,
		exec:     exec,
		oracle:   orc,
		registry: registry,
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

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	// Create REST handler
	restHandler := rest.NewHandler(s.config.Chain, s.mirror, s.courses, s.sessions, s.exec, s.oracle, s.registry)

	// Setup REST routes
	rest.SetupRoutes(router, restHandler, s.config.Auth)

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
		zap.String("chain", string(s.config.Chain)),
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
