package store

import (
	"context"
	"fmt"

	"github.com/rouaze/fwkey-service/internal/config"
	"github.com/rouaze/fwkey-service/internal/logger"
	"github.com/rouaze/fwkey-service/models"
)

// NewDocumentFetcher builds the backend selected by cfg.Backend and decorates
// it with decompression and logging. The fetcher is created once per process
// and shared by all requests.
func NewDocumentFetcher(ctx context.Context, cfg config.Storage, logger *logger.Logger) (DocumentFetcher, error) {
	logger.Info().Str("backend", cfg.Backend).Msg("creating document fetcher...")

	var (
		fetcher DocumentFetcher
		err     error
	)

	switch cfg.Backend {
	case config.BackendS3:
		fetcher, err = NewS3DocumentFetcher(ctx, cfg.S3)
	case config.BackendHTTP:
		fetcher, err = NewHTTPDocumentFetcher(cfg.HTTP)
	case config.BackendFile:
		fetcher = NewFileDocumentFetcher(cfg.Files.Dir)
	default:
		err = fmt.Errorf("%w: %q", config.ErrUnknownStorageBackend, cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	fetcher = NewDecompressingFetcher().Wrap(fetcher)
	fetcher = NewLoggingFetcher(cfg.Backend, logger).Wrap(fetcher)

	return fetcher, nil
}

// Location returns the document location configured in cfg.
func Location(cfg config.Storage) models.DocumentLocation {
	return models.DocumentLocation{Bucket: cfg.Bucket, Key: cfg.Key}
}
