package config

import "time"

// Defaults matching the original deployment of the key store.
const (
	DefaultHTTPAddress    = ":8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultManufField     = "x1E02_Manuf"
	DefaultBackend        = BackendS3
	DefaultBucket         = "x1602-enc-mecha"
	DefaultKey            = "passwords_enc_mecha.ini"
	DefaultHTTPTimeout    = 15 * time.Second
)

// Supported storage backends.
const (
	BackendS3   = "s3"
	BackendHTTP = "http"
	BackendFile = "file"
)

// applyDefaults fills zero-valued settings.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.ManufField == "" {
		cfg.App.ManufField = DefaultManufField
	}
	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = DefaultBackend
	}
	if cfg.Storage.Bucket == "" {
		cfg.Storage.Bucket = DefaultBucket
	}
	if cfg.Storage.Key == "" {
		cfg.Storage.Key = DefaultKey
	}
	if cfg.Storage.HTTP.Timeout == 0 {
		cfg.Storage.HTTP.Timeout = DefaultHTTPTimeout
	}
}
