package service

import "errors"

var (
	ErrUnspecifiedRequest = errors.New("unspecified request")
	ErrDocumentFetch      = errors.New("key document unavailable")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrNoDocumentFetcher     = errors.New("no document fetcher provided")
)
