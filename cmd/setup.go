package main

import (
	"context"
	"fmt"
	"os"

	"github.com/AryehRotberg/reactive-wings/internal/repositories"
	"github.com/AryehRotberg/reactive-wings/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup creates the config file from the template and initializes the local
// snapshot cache.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	var config *shared.Config
	if _, err := os.Stat(configPath); err == nil {
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
			config = shared.DefaultConfig()
		} else {
			r.logger.Info("config file created", "path", configPath)
			if config, err = shared.LoadConfig(configPath); err != nil {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
				config = shared.DefaultConfig()
			}
		}
	}

	r.logger.Info("initializing cache database", "path", config.Cache.Path)

	db, err := shared.NewDatabase(config.Cache.Path)
	if err != nil {
		return fmt.Errorf("failed to create cache database: %w", err)
	}
	defer db.Close()

	shared.ConfigureDatabase(db, config.Cache.MaxOpenConns, config.Cache.MaxIdleConns)

	if err := repositories.NewSnapshotRepository(db).Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize snapshot table: %w", err)
	}

	r.config = config
	r.logger.Infof("setup complete for cache: %v", config.Cache.Path)
	return nil
}
