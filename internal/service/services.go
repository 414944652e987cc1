package service

import (
	"github.com/rouaze/fwkey-service/internal/config"
	"github.com/rouaze/fwkey-service/internal/logger"
	"github.com/rouaze/fwkey-service/internal/store"
	"github.com/rouaze/fwkey-service/models"
)

type Services struct {
	KeyService       KeyService
	BuildInfoService BuildInfoService
}

func NewServices(fetcher store.DocumentFetcher, cfg config.StructuredConfig, build models.BuildInfo, logger *logger.Logger) (*Services, error) {
	keyService, err := NewKeyService(fetcher, cfg.Storage, cfg.App)
	if err != nil {
		return nil, err
	}

	buildInfoService, err := NewBuildInfoService(build, cfg.App)
	if err != nil {
		return nil, err
	}

	return &Services{
		KeyService:       NewKeyServiceLogging(logger).Wrap(keyService),
		BuildInfoService: buildInfoService,
	}, nil
}
