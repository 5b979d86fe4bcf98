package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/ytcat/internal/services"
	"github.com/desertthunder/ytcat/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	var source services.Source
	if config.Validate() == nil {
		if svc, err := services.NewYouTubeService(context.Background(), config); err == nil {
			source = svc
		} else {
			logger.Warn("youtube service unavailable", "error", err)
		}
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Source: source,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "ytcat",
		Usage:    "Sync YouTube playlists into catalog snapshots",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
