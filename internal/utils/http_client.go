package utils

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	errEmptyAddress   = errors.New("empty address")
	errAddressNoHost  = errors.New("address must include host and scheme")
	errUnknownSchemes = errors.New("address scheme must be http or https")
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client whose requests are relative to baseURL and
// bounded by timeout. A non-positive timeout leaves requests bounded only by
// their context.
//
// Example usage:
//
//	client, err := utils.NewHTTPClient("localhost:8080", 5*time.Second)
//	resp, err := client.R().SetContext(ctx).Get("/api/keys/ABC")
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	normalized, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	client := resty.New().SetBaseURL(normalized)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}, nil
}

// NormalizeBaseURL trims raw, defaults the scheme to http and drops trailing
// slashes so that request paths can be appended with a leading "/".
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: %q", errUnknownSchemes, u.Scheme)
	}
	if u.Host == "" {
		return "", errAddressNoHost
	}

	return strings.TrimRight(u.String(), "/"), nil
}
