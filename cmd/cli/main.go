package main

import (
	"context"
	"log"
	"os"

	"github.com/lifementor/lifementor-cli/internal/buildinfo"
	"github.com/lifementor/lifementor-cli/internal/client/cli"
	"github.com/lifementor/lifementor-cli/internal/client/config"
	"github.com/lifementor/lifementor-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.NewDevelopmentZapLogger(cfg.Verbose)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
