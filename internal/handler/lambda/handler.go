// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package lambda

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rouaze/fwkey-service/internal/logger"
	"github.com/rouaze/fwkey-service/internal/service"
	"github.com/rouaze/fwkey-service/internal/utils"
	"github.com/rouaze/fwkey-service/models"
	"github.com/rs/zerolog"
)

// fwQueryParam names the query parameter carrying the firmware identifier.
const fwQueryParam = "fw"

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("lambda handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Handle serves one function URL invocation. The returned error is always
// nil: every outcome, including a failed fetch, is a well-formed response.
func (h *Handler) Handle(ctx context.Context, req events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID(ctx, req))
	})
	ctx = l.WithContext(ctx)

	fw := req.QueryStringParameters[fwQueryParam]
	resp := service.Respond(h.services.KeyService.LookupKey(ctx, fw))

	l.Info().
		Str("method", req.RequestContext.HTTP.Method).
		Str("uri", req.RawPath).
		Str("status", resp.StatusCode).
		Int("size", len(resp.Body)).
		Send()

	return toFunctionURLResponse(resp), nil
}

// traceID prefers the Lambda request id so log lines match platform logs.
func traceID(ctx context.Context, req events.LambdaFunctionURLRequest) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	if req.RequestContext.RequestID != "" {
		return req.RequestContext.RequestID
	}
	return utils.NewTraceID()
}

func toFunctionURLResponse(resp models.Response) events.LambdaFunctionURLResponse {
	headers := make(map[string]string, len(resp.Headers)+1)
	for name, value := range resp.Headers {
		headers[name] = value
	}
	headers["Content-Type"] = "text/plain; charset=utf-8"

	return events.LambdaFunctionURLResponse{
		StatusCode: resp.Status(),
		Headers:    headers,
		Body:       resp.Body,
	}
}
