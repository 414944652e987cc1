package adapter

import (
	"context"
	"fmt"

	"github.com/rouaze/fwkey-service/internal/config"
	"github.com/rouaze/fwkey-service/internal/logger"
	"github.com/rouaze/fwkey-service/internal/utils"
	"github.com/rouaze/fwkey-service/models"
)

type httpKeyServiceAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPKeyServiceAdapter constructs an HTTP implementation of
// [KeyServiceAdapter] talking to cfg.HTTPAddress.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPKeyServiceAdapter(cfg config.ClientAdapter, logger *logger.Logger) (KeyServiceAdapter, error) {
	client, err := utils.NewHTTPClient(cfg.HTTPAddress, cfg.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpKeyServiceAdapter{client: client, logger: logger}, nil
}

// GetKey implements [KeyServiceAdapter] with GET /api/keys/{fw}. The
// identifier is path-escaped.
func (h *httpKeyServiceAdapter) GetKey(ctx context.Context, fw string) (models.KeyLookup, error) {
	var lookup models.KeyLookup

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetPathParam("fw", fw).
		SetResult(&lookup).
		Get("/api/keys/{fw}")
	if err != nil {
		return models.KeyLookup{}, fmt.Errorf("get key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.KeyLookup{}, err
	}

	h.logger.Debug().Str("fw", lookup.Firmware).Str("field", lookup.Field).Msg("key received")
	return lookup, nil
}

// GetServerBuildInfo implements [KeyServiceAdapter] with GET /api/version/.
func (h *httpKeyServiceAdapter) GetServerBuildInfo(ctx context.Context) (models.BuildInfo, error) {
	var info models.BuildInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&info).
		Get("/api/version/")
	if err != nil {
		return models.BuildInfo{}, fmt.Errorf("get build info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BuildInfo{}, err
	}

	return info, nil
}
