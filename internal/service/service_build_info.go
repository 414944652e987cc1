package service

import (
	"context"

	"github.com/rouaze/fwkey-service/internal/config"
	"github.com/rouaze/fwkey-service/models"
)

type buildInfoService struct {
	info models.BuildInfo
}

// NewBuildInfoService reports build with its version overridden by
// cfg.Version when one is configured.
func NewBuildInfoService(build models.BuildInfo, cfg config.App) (BuildInfoService, error) {
	info := build.WithVersion(cfg.Version)
	if info.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &buildInfoService{info: info}, nil
}

func (s *buildInfoService) GetBuildInfo(_ context.Context) models.BuildInfo {
	return s.info
}
