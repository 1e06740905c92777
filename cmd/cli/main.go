package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/growlog/internal/buildinfo"
	"github.com/dmitrijs2005/growlog/internal/client/cli"
	"github.com/dmitrijs2005/growlog/internal/client/config"
	"github.com/dmitrijs2005/growlog/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(2)
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	app.Run(ctx)
}
