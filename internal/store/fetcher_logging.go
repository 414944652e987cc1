package store

import (
	"context"
	"time"

	"github.com/rouaze/fwkey-service/internal/logger"
	"github.com/rouaze/fwkey-service/models"
)

// LoggingFetcher records backend, location, size and duration of every fetch.
// The request-scoped logger from ctx is preferred so entries carry the trace
// id; the fallback logger is used otherwise.
type LoggingFetcher struct {
	inner   DocumentFetcher
	backend string

	logger *logger.Logger
}

// NewLoggingFetcher returns an unwrapped decorator; call Wrap to attach it.
func NewLoggingFetcher(backend string, logger *logger.Logger) DocumentFetcherWrapper {
	return &LoggingFetcher{backend: backend, logger: logger}
}

// Wrap implements [DocumentFetcherWrapper].
func (l *LoggingFetcher) Wrap(inner DocumentFetcher) DocumentFetcher {
	l.inner = inner
	return l
}

// FetchDocument implements [DocumentFetcher].
func (l *LoggingFetcher) FetchDocument(ctx context.Context, location models.DocumentLocation) ([]byte, error) {
	log := logger.FromContextOr(ctx, l.logger)
	start := time.Now()

	data, err := l.inner.FetchDocument(ctx, location)

	event := log.Debug()
	if err != nil {
		event = log.Error().Err(err)
	}
	event.
		Str("backend", l.backend).
		Str("location", location.String()).
		Int("size", len(data)).
		Dur("duration", time.Since(start)).
		Msg("fetch document")

	return data, err
}
