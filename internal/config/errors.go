package config

import "errors"

// Validation errors returned by [GetStructuredConfig] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, a listen address that is not host:port).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an http backend without a base URL).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty manufacturing field name).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrUnknownStorageBackend indicates a backend name other than
	// "s3", "http" or "file".
	ErrUnknownStorageBackend = errors.New("unknown storage backend")
	// ErrUnsupportedConfigFormat indicates a config file whose extension is
	// neither .json, .yaml nor .yml.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
	// ErrInvalidClientConfigs indicates invalid command-line client settings
	// (for example, a missing firmware identifier).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
