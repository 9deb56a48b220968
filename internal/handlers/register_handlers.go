package handlers

import (
	"fmt"

	"github.com/SscSPs/floor_assignment_app/cmd/docs"
	portssvc "github.com/SscSPs/floor_assignment_app/internal/core/ports/services"
	"github.com/SscSPs/floor_assignment_app/internal/dto"
	"github.com/SscSPs/floor_assignment_app/internal/middleware"
	"github.com/SscSPs/floor_assignment_app/internal/platform/config"
	"github.com/SscSPs/floor_assignment_app/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthog *utils.PosthogClientWrapper,
) error {
	if err := dto.RegisterValidators(); err != nil {
		return fmt.Errorf("failed to register validators: %w", err)
	}

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	if err := registerAuthRoutes(r, cfg, services); err != nil {
		return err
	}

	setupAPIV1Routes(r, cfg, services, posthog)

	if err := setupPublicRoutes(r, cfg, services.Public); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates to entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthog *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.SessionCookieName),
		middleware.PosthogMiddleware(posthog),
	)

	registerEmployeeRoutes(v1, services.Employee)
	registerWorkplaceRoutes(v1, services.Workplace)
	registerAttendanceRoutes(v1, services.Attendance)
	registerAssignmentRoutes(v1, services.Assignment)
	registerDisplayLayoutRoutes(v1, services.DisplayLayout)
}

// setupPublicRoutes configures the unauthenticated display endpoints behind a per-IP limiter.
func setupPublicRoutes(r *gin.Engine, cfg *config.Config, publicService portssvc.PublicSvcFacade) error {
	lim, err := middleware.NewIPLimiter(cfg.PublicRateLimit)
	if err != nil {
		return fmt.Errorf("invalid public rate limit: %w", err)
	}
	public := r.Group("/api/v1/public", middleware.RateLimit(lim))
	registerPublicRoutes(public, cfg, publicService)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
