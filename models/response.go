package models

import (
	"net/http"
	"strconv"
)

// Response is the transport-neutral outcome of a key lookup. HTTP and Lambda
// front-ends both render it verbatim.
type Response struct {
	// StatusCode is the decimal HTTP status, e.g. "200" or "404".
	StatusCode string `json:"statusCode"`

	// Headers is always present and currently always empty.
	Headers map[string]string `json:"headers"`

	// Body is the manufacturing secret on success or a short plain-text
	// message otherwise. It may be empty.
	Body string `json:"body"`
}

// NewResponse builds a Response with an empty, non-nil header map.
func NewResponse(statusCode, body string) Response {
	return Response{
		StatusCode: statusCode,
		Headers:    map[string]string{},
		Body:       body,
	}
}

// Status returns StatusCode as an integer, or 500 if it is malformed.
func (r Response) Status() int {
	code, err := strconv.Atoi(r.StatusCode)
	if err != nil || code < 100 || code > 999 {
		return http.StatusInternalServerError
	}
	return code
}
