// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ini

import "errors"

// Lookup errors returned by [Config.Resolve]. The two are deliberately distinct
// so that an existing firmware entry with a missing field is never mistaken
// for an unknown firmware.
var (
	// ErrSectionNotFound is returned when the requested section does not exist.
	ErrSectionNotFound = errors.New("section not found")

	// ErrFieldNotFound is returned when the section exists but does not
	// contain the requested field.
	ErrFieldNotFound = errors.New("field not found")
)
