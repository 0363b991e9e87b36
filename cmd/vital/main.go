package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/vital/internal/buildinfo"
	"github.com/dmitrijs2005/vital/internal/cli"
	"github.com/dmitrijs2005/vital/internal/config"
	"github.com/dmitrijs2005/vital/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)
	if s, ok := logger.(interface{ Sync() error }); ok {
		defer func() { _ = s.Sync() }()
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
