// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "path"

// DocumentLocation addresses the key document inside an object store in
// bucket/key form. File and HTTP backends map it onto a directory or a URL
// path respectively.
type DocumentLocation struct {
	// Bucket is the object-store bucket (or top-level directory) holding the
	// document, e.g. "x1602-enc-mecha".
	Bucket string `json:"bucket" yaml:"bucket"`

	// Key is the object key of the document inside Bucket,
	// e.g. "passwords_enc_mecha.ini".
	Key string `json:"key" yaml:"key"`
}

// String returns the location as "bucket/key".
func (l DocumentLocation) String() string {
	return path.Join(l.Bucket, l.Key)
}
