package service_test

import (
	"testing"

	"github.com/rouaze/fwkey-service/internal/config"
	"github.com/rouaze/fwkey-service/internal/logger"
	"github.com/rouaze/fwkey-service/internal/mock"
	"github.com/rouaze/fwkey-service/internal/service"
	"github.com/rouaze/fwkey-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServices(t *testing.T) {
	fetcher := mock.NewMockDocumentFetcher(gomock.NewController(t))

	services, err := service.NewServices(fetcher, config.StructuredConfig{App: testApp, Storage: testStorage}, models.BuildInfo{}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, services.KeyService)
	assert.Equal(t, "1.0.0", services.BuildInfoService.GetBuildInfo(t.Context()).Version)
}

func TestNewServices_Errors(t *testing.T) {
	_, err := service.NewServices(nil, config.StructuredConfig{App: testApp}, models.BuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, service.ErrNoDocumentFetcher)

	fetcher := mock.NewMockDocumentFetcher(gomock.NewController(t))
	_, err = service.NewServices(fetcher, config.StructuredConfig{}, models.BuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, service.ErrVersionIsNotSpecified)
}
