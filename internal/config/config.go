// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// fwkey service. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON or YAML file.
//
// Struct tags:
//   - envPrefix - prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       - direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the manufacturing field
	// name and the application version.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the backend the key document is read
	// from.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// ManufField is the field read from the firmware section, holding the
	// manufacturing secret.
	// Env: APP_MANUF_FIELD
	ManufField string `env:"MANUF_FIELD"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the settings of every supported document backend. Only the
// group named by Backend is used.
type Storage struct {
	// Backend is one of "s3", "http" or "file".
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Bucket is the bucket (or top-level directory) holding the document.
	// Env: STORAGE_BUCKET
	Bucket string `env:"BUCKET"`

	// Key is the object key of the document. Keys ending in ".gz" or ".zst"
	// are decompressed after download.
	// Env: STORAGE_KEY
	Key string `env:"KEY"`

	S3    S3    `envPrefix:"S3_"`
	HTTP  HTTP  `envPrefix:"HTTP_"`
	Files Files `envPrefix:"FILES_"`
}

// S3 holds settings for the S3 backend. Empty credentials fall back to the
// default AWS credential chain.
type S3 struct {
	// Env: STORAGE_S3_REGION
	Region string `env:"REGION"`

	// Endpoint overrides the service endpoint for S3-compatible stores
	// (MinIO, LocalStack).
	// Env: STORAGE_S3_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// Env: STORAGE_S3_USE_PATH_STYLE
	UsePathStyle bool `env:"USE_PATH_STYLE"`

	// Env: STORAGE_S3_ACCESS_KEY_ID
	AccessKeyID string `env:"ACCESS_KEY_ID"`

	// Env: STORAGE_S3_SECRET_ACCESS_KEY
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
}

// HTTP holds settings for the plain HTTP object backend.
type HTTP struct {
	// BaseURL is prefixed to "/{bucket}/{key}".
	// Env: STORAGE_HTTP_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Timeout bounds a single document download.
	// Env: STORAGE_HTTP_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Files holds file-system settings for the local backend.
type Files struct {
	// Dir is the root directory; the document is read from Dir/Bucket/Key.
	// Env: STORAGE_FILES_DIR
	Dir string `env:"DIR"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Config file (path resolved from sources 1 and 2)
//
// Defaults are applied to whatever is still unset before validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withFile().
		build()
}
