// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. It is called after
// defaults have been applied.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// sentinel errors from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if _, _, err := net.SplitHostPort(cfg.Server.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	if strings.TrimSpace(cfg.App.ManufField) == "" {
		return fmt.Errorf("%w: empty manufacturing field", ErrInvalidAppConfigs)
	}

	return cfg.Storage.validate()
}

func (s Storage) validate() error {
	if s.Bucket == "" || s.Key == "" {
		return fmt.Errorf("%w: bucket and key are required", ErrInvalidStorageConfigs)
	}

	switch s.Backend {
	case BackendS3:
		if (s.S3.AccessKeyID == "") != (s.S3.SecretAccessKey == "") {
			return fmt.Errorf("%w: s3 access key id and secret must be set together", ErrInvalidStorageConfigs)
		}
	case BackendHTTP:
		if s.HTTP.BaseURL == "" {
			return fmt.Errorf("%w: http backend requires a base url", ErrInvalidStorageConfigs)
		}
	case BackendFile:
		if s.Files.Dir == "" {
			return fmt.Errorf("%w: file backend requires a directory", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorageBackend, s.Backend)
	}

	return nil
}
