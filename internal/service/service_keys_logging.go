package service

import (
	"context"
	"errors"

	"github.com/rouaze/fwkey-service/internal/ini"
	"github.com/rouaze/fwkey-service/internal/logger"
)

type keyServiceLogging struct {
	inner  KeyService
	logger *logger.Logger
}

// NewKeyServiceLogging returns a wrapper logging every lookup outcome.
// Secrets are never logged.
func NewKeyServiceLogging(logger *logger.Logger) KeyServiceWrapper {
	return &keyServiceLogging{logger: logger}
}

func (k *keyServiceLogging) Wrap(inner KeyService) KeyService {
	k.inner = inner
	return k
}

func (k *keyServiceLogging) LookupKey(ctx context.Context, fw string) (string, error) {
	log := logger.FromContextOr(ctx, k.logger)

	secret, err := k.inner.LookupKey(ctx, fw)

	switch {
	case err == nil:
		log.Info().Str("fw", fw).Msg("key resolved")
	case errors.Is(err, ErrUnspecifiedRequest):
		log.Warn().Msg("lookup without firmware id")
	case errors.Is(err, ini.ErrSectionNotFound):
		log.Info().Str("fw", fw).Msg("firmware id not found")
	case errors.Is(err, ini.ErrFieldNotFound):
		log.Warn().Str("fw", fw).Err(err).Msg("firmware section has no manufacturing field")
	default:
		log.Error().Str("fw", fw).Err(err).Msg("key lookup failed")
	}

	return secret, err
}
