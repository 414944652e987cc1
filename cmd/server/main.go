package main

import (
	"context"
	"fmt"

	"github.com/rouaze/fwkey-service/internal/config"
	"github.com/rouaze/fwkey-service/internal/handler"
	"github.com/rouaze/fwkey-service/internal/logger"
	"github.com/rouaze/fwkey-service/internal/server"
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
	fmt.Print(buildInfo)

	log := logger.NewLogger("fwkey-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("backend", cfg.Storage.Backend).
		Str("location", store.Location(cfg.Storage).String()).
		Str("manuf_field", cfg.App.ManufField).
		Msg("received configs")

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

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
