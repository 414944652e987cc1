// Package lambda adapts AWS Lambda function URL invocations to the key
// service. It renders the same response records as the HTTP transport.
package lambda
