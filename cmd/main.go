package main

import (
	"context"
	"os"
	"time"

	"github.com/AryehRotberg/reactive-wings/internal/services"
	"github.com/AryehRotberg/reactive-wings/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)
	ctx := context.Background()

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	timeout := time.Duration(config.API.TimeoutSeconds) * time.Second
	httpClient := services.NewSessionClient(ctx, config.Auth, timeout)

	runner := NewRunner(RunnerOpts{
		Config:     config,
		HTTPClient: httpClient,
		Logger:     logger,
	})

	app := &cli.Command{
		Name:     "wings",
		Usage:    "Track flight subscriptions from the terminal",
		Version:  "0.3.0",
		Commands: runner.register(),
	}

	if err := app.Run(ctx, os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
