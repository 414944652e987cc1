// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ini

import "fmt"

// Config is the parsed form of a document.
//
// Sections maps a section name to its fields; Globals holds fields that
// appeared while no section was active. Keys are case-sensitive.
type Config struct {
	Sections map[string]map[string]string
	Globals  map[string]string
}

// NewConfig returns an empty, ready to fill Config.
func NewConfig() *Config {
	return &Config{
		Sections: make(map[string]map[string]string),
		Globals:  make(map[string]string),
	}
}

// Section returns the fields of the named section.
func (c *Config) Section(name string) (map[string]string, bool) {
	fields, ok := c.Sections[name]
	return fields, ok
}

// Global returns a top-level field.
func (c *Config) Global(name string) (string, bool) {
	value, ok := c.Globals[name]
	return value, ok
}

// Resolve returns the value of field inside section.
//
// It returns [ErrSectionNotFound] when section is absent and
// [ErrFieldNotFound] when the section exists but lacks field. Top-level
// fields are never consulted.
func (c *Config) Resolve(section, field string) (string, error) {
	fields, ok := c.Sections[section]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrSectionNotFound, section)
	}

	value, ok := fields[field]
	if !ok {
		return "", fmt.Errorf("%w: %q in section %q", ErrFieldNotFound, field, section)
	}

	return value, nil
}
