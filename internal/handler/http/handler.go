package http

import (
	"github.com/rouaze/fwkey-service/internal/config"
	"github.com/rouaze/fwkey-service/internal/logger"
	"github.com/rouaze/fwkey-service/internal/service"
)

type Handler struct {
	services   *service.Services
	manufField string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")

	manufField := cfg.ManufField
	if manufField == "" {
		manufField = config.DefaultManufField
	}

	return &Handler{
		services:   services,
		manufField: manufField,
		logger:     logger,
	}
}
