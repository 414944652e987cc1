// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/rouaze/fwkey-service/internal/config"
	"github.com/rouaze/fwkey-service/internal/ini"
	"github.com/rouaze/fwkey-service/internal/store"
	"github.com/rouaze/fwkey-service/models"
)

type keyService struct {
	fetcher    store.DocumentFetcher
	location   models.DocumentLocation
	manufField string
}

// NewKeyService returns a KeyService reading the document at the location
// configured in storage. The document is fetched and parsed on every call.
func NewKeyService(fetcher store.DocumentFetcher, storage config.Storage, app config.App) (KeyService, error) {
	if fetcher == nil {
		return nil, ErrNoDocumentFetcher
	}

	manufField := app.ManufField
	if manufField == "" {
		manufField = config.DefaultManufField
	}

	return &keyService{
		fetcher:    fetcher,
		location:   store.Location(storage),
		manufField: manufField,
	}, nil
}

func (k *keyService) LookupKey(ctx context.Context, fw string) (string, error) {
	if fw == "" {
		return "", ErrUnspecifiedRequest
	}

	data, err := k.fetcher.FetchDocument(ctx, k.location)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDocumentFetch, err)
	}

	return ini.Parse(string(data)).Resolve(fw, k.manufField)
}
