package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rouaze/fwkey-service/models"
)

// fileDocumentFetcher reads documents from a local directory tree laid out as
// root/bucket/key. Useful for development and for deployments that mount the
// key document from a secret volume.
type fileDocumentFetcher struct {
	root string
}

// NewFileDocumentFetcher constructs a [DocumentFetcher] rooted at dir.
func NewFileDocumentFetcher(dir string) DocumentFetcher {
	return &fileDocumentFetcher{root: filepath.Clean(dir)}
}

// FetchDocument implements [DocumentFetcher]. Locations that would resolve
// outside the root are rejected with [ErrInvalidLocation].
func (f *fileDocumentFetcher) FetchDocument(ctx context.Context, location models.DocumentLocation) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchingDocument, err)
	}

	rel := filepath.Join(location.Bucket, filepath.FromSlash(location.Key))
	if location.Key == "" || !filepath.IsLocal(rel) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLocation, location.String())
	}

	data, err := os.ReadFile(filepath.Join(f.root, rel))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrDocumentNotFound, location, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchingDocument, location, err)
	}

	return data, nil
}
