package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/rouaze/fwkey-service/models"
)

// Compressed document extensions recognised by [DecompressingFetcher].
const (
	extGzip = ".gz"
	extZstd = ".zst"
)

// MaxDocumentSize bounds the inflated size of a compressed key document.
const MaxDocumentSize = 8 << 20

// DecompressingFetcher inflates documents whose key ends in ".gz" or ".zst".
// Other documents pass through unchanged.
type DecompressingFetcher struct {
	inner   DocumentFetcher
	maxSize int64
}

// NewDecompressingFetcher returns an unwrapped decorator; call Wrap to attach
// it to a backend.
func NewDecompressingFetcher() DocumentFetcherWrapper {
	return &DecompressingFetcher{maxSize: MaxDocumentSize}
}

// Wrap implements [DocumentFetcherWrapper].
func (d *DecompressingFetcher) Wrap(inner DocumentFetcher) DocumentFetcher {
	d.inner = inner
	return d
}

// FetchDocument implements [DocumentFetcher].
func (d *DecompressingFetcher) FetchDocument(ctx context.Context, location models.DocumentLocation) ([]byte, error) {
	data, err := d.inner.FetchDocument(ctx, location)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(path.Ext(location.Key)) {
	case extGzip:
		data, err = gunzip(data, d.maxSize)
	case extZstd:
		data, err = unzstd(data, d.maxSize)
	default:
		return data, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecompressingDocument, location, err)
	}

	return data, nil
}

func gunzip(data []byte, maxSize int64) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	out, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(out)) > maxSize {
		return nil, fmt.Errorf("%w: over %d bytes", ErrDocumentTooLarge, maxSize)
	}

	return out, nil
}

func unzstd(data []byte, maxSize int64) ([]byte, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64(maxSize)))
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	out, err := dec.DecodeAll(data, nil)
	if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
		return nil, fmt.Errorf("%w: over %d bytes: %w", ErrDocumentTooLarge, maxSize, err)
	}

	return out, err
}
