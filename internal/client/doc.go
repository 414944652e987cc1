// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line lookup client.
//
// It asks the key service for one firmware identifier and either prints the
// secret or places it on the system clipboard.
package client
