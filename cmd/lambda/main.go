package main

import (
	"context"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/rouaze/fwkey-service/internal/config"
	"github.com/rouaze/fwkey-service/internal/handler"
	"github.com/rouaze/fwkey-service/internal/logger"
	"github.com/rouaze/fwkey-service/internal/service"
	"github.com/rouaze/fwkey-service/internal/store"
	"github.com/rouaze/fwkey-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)

	log := logger.NewLogger("fwkey-lambda")
	log.Info().
		Str("version", buildInfo.Version).
		Str("date", buildInfo.Date).
		Str("commit", buildInfo.Commit).
		Msg("starting")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	// the Lambda runtime owns the transport
	cfg.Server.HTTPAddress = ""

	// created once per execution environment and reused by warm invocations
	fetcher, err := store.NewDocumentFetcher(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating document fetcher")
	}

	services, err := service.NewServices(fetcher, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	awslambda.Start(handlers.Lambda.Handle)
}
