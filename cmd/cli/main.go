package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/memoryvault/internal/buildinfo"
	"github.com/dmitrijs2005/memoryvault/internal/cli"
	"github.com/dmitrijs2005/memoryvault/internal/config"
	"github.com/dmitrijs2005/memoryvault/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	// Warnings and errors only; the REPL owns stdout.
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		slog.Error("error initializing application", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
