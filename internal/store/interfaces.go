// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store retrieves the key document from the configured storage
// backend.
//
// The primary abstraction is [DocumentFetcher]. Backends are S3 (or any
// S3-compatible object store), a plain HTTP object host, and the local file
// system; [NewDocumentFetcher] picks one from configuration and decorates it
// with transparent decompression and logging.
//
// Errors are reported by wrapping [ErrDocumentNotFound] or
// [ErrFetchingDocument] so that callers can use [errors.Is] regardless of the
// backend.
package store

import (
	"context"

	"github.com/rouaze/fwkey-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/document_fetcher_mock.go -package=mock

// DocumentFetcher returns the raw bytes of the document stored at a location.
// Implementations are safe for concurrent use and hold no per-request state.
type DocumentFetcher interface {
	// FetchDocument downloads the complete document. The returned slice is
	// owned by the caller.
	FetchDocument(ctx context.Context, location models.DocumentLocation) ([]byte, error)
}

// DocumentFetcherWrapper defines middleware composition for DocumentFetcher.
// Implementations wrap an existing DocumentFetcher to add behavior such as
// logging or decompression.
type DocumentFetcherWrapper interface {
	Wrap(DocumentFetcher) DocumentFetcher // returns a decorated DocumentFetcher applying additional behavior
}
