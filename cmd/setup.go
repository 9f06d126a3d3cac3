package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/wis/internal/shared"
	"github.com/urfave/cli/v3"
)

// Init writes the embedded example configuration to --config.
func (r *Runner) Init(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" {
		return fmt.Errorf("%w: --config", shared.ErrMissingArgument)
	}

	r.logger.Info("creating config file from template", "path", configPath)
	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}

	config, err := shared.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load created config: %w", err)
	}
	r.logger.Info("config file created", "path", configPath)

	r.writePlain("✓ Config written to %s\n", configPath)
	r.writePlainln("Next steps:")
	r.writePlain("1. Point source.location at your sheet collection (currently %q)\n", config.Source.Location)
	r.writePlain("2. Run 'wis view' or 'wis serve --open'\n")

	return nil
}
