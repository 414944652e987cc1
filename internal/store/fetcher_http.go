package store

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rouaze/fwkey-service/internal/config"
	"github.com/rouaze/fwkey-service/internal/utils"
	"github.com/rouaze/fwkey-service/models"
)

type httpDocumentFetcher struct {
	client *utils.HTTPClient
}

// NewHTTPDocumentFetcher constructs a [DocumentFetcher] that downloads
// "{BaseURL}/{bucket}/{key}" with a GET request. Slashes in the key separate
// path segments; every segment is escaped.
//
// Returns an error if cfg.BaseURL is empty or is not an absolute URL.
func NewHTTPDocumentFetcher(cfg config.HTTP) (DocumentFetcher, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultHTTPTimeout
	}

	client, err := utils.NewHTTPClient(cfg.BaseURL, timeout)
	if err != nil {
		return nil, fmt.Errorf("invalid storage http base url: %w", err)
	}

	return &httpDocumentFetcher{client: client}, nil
}

// FetchDocument implements [DocumentFetcher].
func (f *httpDocumentFetcher) FetchDocument(ctx context.Context, location models.DocumentLocation) ([]byte, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetPathParam("bucket", location.Bucket).
		SetRawPathParam("key", escapeKey(location.Key)).
		Get("/{bucket}/{key}")
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %w", ErrFetchingDocument, location, err)
	}

	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("GET %s: %w", location, err)
	}

	return resp.Body(), nil
}

func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return fmt.Errorf("%w: http %d", ErrDocumentNotFound, resp.StatusCode())
	default:
		return fmt.Errorf("%w: http %d %s", ErrFetchingDocument, resp.StatusCode(), http.StatusText(resp.StatusCode()))
	}
}

