// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// BuildInfoUnknown stands in for build metadata that was not linked in.
const BuildInfoUnknown = "N/A"

// BuildInfo identifies the binary answering key lookups. Values come from
// linker flags at release time and are served by /api/version/.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewBuildInfo fills missing values with [BuildInfoUnknown].
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orUnknown(version),
		Date:    orUnknown(date),
		Commit:  orUnknown(commit),
	}
}

// WithVersion returns a copy reporting version. An empty version keeps the
// linked one.
func (b BuildInfo) WithVersion(version string) BuildInfo {
	if version != "" {
		b.Version = version
	}
	return b
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", b.Version, b.Date, b.Commit)
}

func orUnknown(s string) string {
	if s == "" {
		return BuildInfoUnknown
	}
	return s
}
