// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// key service transports.
//
// All Msg* constants are human-readable strings written into response bodies
// to describe the outcome of a lookup. Keeping them in one place keeps the
// HTTP and Lambda front-ends consistent.
package app

const (
	// MsgUnspecifiedRequest is returned when the request carries no firmware
	// identifier.
	MsgUnspecifiedRequest = "Unspecified request"

	// MsgKeyNotFound is returned when the key document has no section for the
	// requested firmware identifier.
	MsgKeyNotFound = "FW key not found"

	// MsgKeyStoreUnavailable is returned when the key document cannot be
	// retrieved from storage.
	MsgKeyStoreUnavailable = "Key store unavailable"

	// MsgRequestTimedOut is returned when a request exceeds the server's
	// request timeout.
	MsgRequestTimedOut = "request timed out"
)
