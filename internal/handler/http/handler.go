package http

import (
	"github.com/kim-mccallum/recipe-app-api/internal/config"
	"github.com/kim-mccallum/recipe-app-api/internal/logger"
	"github.com/kim-mccallum/recipe-app-api/internal/service"
)

type Handler struct {
	services *service.Services

	// allowedOrigins feeds the CORS middleware; empty means any origin is
	// allowed.
	allowedOrigins []string

	// uploadsDir is the directory the /uploads/images file server reads from.
	uploadsDir string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigins: cfg.Server.AllowedOrigins,
		uploadsDir:     cfg.Storage.Files.UploadsDir,
		logger:         logger,
	}
}
