package handler

import (
	"github.com/rouaze/fwkey-service/internal/config"
	"github.com/rouaze/fwkey-service/internal/handler/http"
	"github.com/rouaze/fwkey-service/internal/handler/lambda"
	"github.com/rouaze/fwkey-service/internal/logger"
	"github.com/rouaze/fwkey-service/internal/service"
)

type Handlers struct {
	HTTP   *http.Handler
	Lambda *lambda.Handler
}

// NewHandlers creates the transport handlers. The HTTP handler is created
// only when an HTTP address is configured; the Lambda handler is always
// available.
func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServicesProvided
	}

	handlers := &Handlers{
		Lambda: lambda.NewHandler(services, logger),
	}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg.App, logger)
	}

	return handlers, nil
}
