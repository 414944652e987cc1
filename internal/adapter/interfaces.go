// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport to the key service.
//
// The primary abstraction is [KeyServiceAdapter], which decouples the
// command-line client from the protocol. The package ships an HTTP
// implementation ([NewHTTPKeyServiceAdapter]).
//
// HTTP status codes are mapped to the sentinel errors in errors.go by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrBadGateway] when the service cannot reach its key store).
package adapter

import (
	"context"

	"github.com/rouaze/fwkey-service/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/key_service_adapter_mock.go -package=mock

// KeyServiceAdapter defines transport-agnostic communication with the key
// service.
type KeyServiceAdapter interface {
	// GetKey looks up the manufacturing secret of the firmware identifier fw.
	GetKey(ctx context.Context, fw string) (models.KeyLookup, error)

	// GetServerBuildInfo returns the build metadata reported by the service.
	GetServerBuildInfo(ctx context.Context) (models.BuildInfo, error)
}
