package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/ytcat/internal/shared"
	"github.com/urfave/cli/v3"
)

// loadOrDefaultConfig reads the config file at path, falling back to the
// embedded defaults when it is missing or unreadable.
func (r *Runner) loadOrDefaultConfig(path string) *shared.Config {
	if _, err := os.Stat(path); err == nil {
		if config, err := shared.LoadConfig(path); err == nil {
			return config
		} else {
			r.logger.Warn("failed to load config, using defaults", "error", err)
		}
	}
	return shared.DefaultConfig()
}

// SetupConfig creates a config.toml from the embedded template.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if err := shared.CreateConfigFile(configPath); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	r.logger.Info("config file created", "path", configPath)
	r.writePlain("Created %s. Fill in your credentials before running a sync.\n", configPath)
	return nil
}

// SetupDatabase initializes the run history database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	config := r.loadOrDefaultConfig(cmd.String("config"))

	r.logger.Info("initializing database", "path", config.Database.Path)

	db, err := shared.NewDatabase(config.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)

	r.logger.Info("running database migrations")
	if err := shared.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	r.logger.Infof("setup complete for database: %v", config.Database.Path)
	return nil
}
