// Package utils provides small helpers shared by the transports and the
// storage backends: HTTP response writers, a resty client constructor and
// trace id generation.
package utils
