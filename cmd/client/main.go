package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rouaze/fwkey-service/internal/adapter"
	"github.com/rouaze/fwkey-service/internal/client"
	"github.com/rouaze/fwkey-service/internal/config"
	"github.com/rouaze/fwkey-service/internal/logger"
	"github.com/rouaze/fwkey-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger(os.Stderr, "fwkey-client")

	if len(os.Args) > 1 && os.Args[1] == "-version" {
		fmt.Print(models.NewBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	keyAdapter, err := adapter.NewHTTPKeyServiceAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create key service adapter")
	}

	app, err := client.NewApp(keyAdapter, client.NewSystemClipboard(), os.Stdout, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
