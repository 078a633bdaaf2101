package router

import (
	"fmt"

	"github.com/jcallahan/flock-backend/internal/handlers"
	appMiddleware "github.com/jcallahan/flock-backend/internal/middleware"
	"github.com/jcallahan/flock-backend/internal/models"
	"github.com/jcallahan/flock-backend/internal/repositories"
	"github.com/jcallahan/flock-backend/pkg/config"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, logger zerolog.Logger) {
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			logger.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	logger.Info().Msg("global middleware configured")
}

// SetupRoutes migrates the schema, wires repositories into handlers and
// registers all application routes.
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config, logger zerolog.Logger) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Follow{},
	); err != nil {
		return fmt.Errorf("auto migrate models: %w", err)
	}
	logger.Info().Msg("auto-migrations completed")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	userRepo := repositories.NewPostgresUserRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)

	auth := appMiddleware.JWTAuth(cfg.JWTSecret)
	users := e.Group("/users")

	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	authHandler.RegisterAuthRoutes(users)
	logger.Info().Msg("auth routes configured")

	userHandler := handlers.NewUserHandler(userRepo, followRepo)
	userHandler.RegisterUserRoutes(users, auth)
	logger.Info().Msg("user routes configured")

	followHandler := handlers.NewFollowHandler(followRepo, userRepo)
	followHandler.RegisterFollowRoutes(users, auth)
	logger.Info().Msg("follow routes configured")

	return nil
}
