package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/celo-academy/academy-engine/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Mirror endpoints (public read, verified write)
		v1.GET("/courses/:slug/enrollment-count", handler.GetEnrollmentCount)
		v1.POST("/courses/:slug/sync-enrollment", handler.SyncEnrollment)

		// Session endpoints
		v1.GET("/session", handler.GetSession)
		v1.GET("/session/calls", middleware.Auth(authCfg), handler.GetSessionCalls)
		v1.POST("/session/reconnect", middleware.Auth(authCfg), handler.ForceReconnect)

		// Course actions (requires authentication)
		v1.POST("/courses/:slug/enroll", middleware.Auth(authCfg), handler.Enroll)
		v1.POST("/courses/:slug/modules/:index/complete", middleware.Auth(authCfg), handler.CompleteModule)
		v1.GET("/courses/:slug/progress", handler.GetProgress)

		// Sponsorship diagnostics
		v1.GET("/sponsorship/contracts", handler.GetSponsoredContracts)
	}
}
