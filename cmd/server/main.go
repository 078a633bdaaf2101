package main

import (
	"os"

	"github.com/jcallahan/flock-backend/internal/httperr"
	"github.com/jcallahan/flock-backend/internal/router"
	"github.com/jcallahan/flock-backend/pkg/config"
	"github.com/jcallahan/flock-backend/validators"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	if cfg.Env == "development" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	db, err := config.InitDB(cfg.PostgresDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			logger.Error().Err(err).Msg("failed to close database")
		}
	}()
	logger.Info().Msg("connected to PostgreSQL")

	e := echo.New()
	e.HideBanner = true
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = httperr.Handler(logger)

	router.SetupMiddleware(e, logger)
	if err := router.SetupRoutes(e, db, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("failed to set up routes")
	}

	logger.Info().Str("port", cfg.Port).Msg("starting server")
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
