package http

import (
	"context"
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

const testDocument = "[ABC]\nx1E02_Manuf=hunter2\n\n[NOFIELD]\nother=1\n"

// newTestHandler builds a Handler with a nop logger and the given services.
func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, config.App{ManufField: "x1E02_Manuf"}, logger.Nop())
}

// newMockedHandler wires real services on top of a mocked document fetcher.
func newMockedHandler(t *testing.T, document string, fetchErr error) *Handler {
	t.Helper()

	fetcher := mock.NewMockDocumentFetcher(gomock.NewController(t))
	fetcher.EXPECT().
		FetchDocument(gomock.Any(), gomock.Any()).
		Return([]byte(document), fetchErr).
		AnyTimes()

	services, err := service.NewServices(fetcher, config.StructuredConfig{
		App:     config.App{ManufField: "x1E02_Manuf", Version: "1.2.3"},
		Storage: config.Storage{Bucket: "b", Key: "k"},
	}, models.NewBuildInfo("1.0.0", "2026-10-01", "abc123"), logger.Nop())
	require.NoError(t, err)

	return newTestHandler(services)
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.App{ManufField: "custom"}, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, "custom", h.manufField)
}

func TestNewHandler_DefaultManufField(t *testing.T) {
	h := NewHandler(&service.Services{}, config.App{}, logger.Nop())

	assert.Equal(t, config.DefaultManufField, h.manufField)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := newTestHandler(&service.Services{})
	h2 := newTestHandler(&service.Services{})

	assert.NotSame(t, h1, h2)
}

// ─────────────────────────────────────────────
// Mocked KeyService
// ─────────────────────────────────────────────

func TestLookupKey_PassesQueryParameter(t *testing.T) {
	ctrl := gomock.NewController(t)
	keys := mock.NewMockKeyService(ctrl)
	keys.EXPECT().
		LookupKey(gomock.Any(), "A B&C").
		DoAndReturn(func(ctx context.Context, fw string) (string, error) {
			return "s3cr3t", nil
		})

	router := newTestHandler(&service.Services{KeyService: keys}).Init()
	rr := serve(router, "/?fw=A+B%26C", nil)

	assert.Equal(t, 200, rr.Code)
	assert.Equal(t, "s3cr3t", rr.Body.String())
}
