package store

import "errors"

// Sentinel errors returned by [DocumentFetcher] implementations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrDocumentNotFound is returned when the bucket or key does not exist.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrFetchingDocument is returned for every other download failure:
	// network errors, access denied, unexpected status codes, read errors.
	ErrFetchingDocument = errors.New("error fetching document")

	// ErrDecompressingDocument is returned when a compressed document cannot
	// be decoded.
	ErrDecompressingDocument = errors.New("error decompressing document")

	// ErrDocumentTooLarge is returned when a compressed document inflates
	// beyond [MaxDocumentSize].
	ErrDocumentTooLarge = errors.New("document too large")

	// ErrInvalidLocation is returned when a location would escape the
	// configured root of the file backend.
	ErrInvalidLocation = errors.New("invalid document location")
)
