package main

import (
	"fmt"

	"github.com/JaimeStill/suggestion-box/internal/config"
	"github.com/JaimeStill/suggestion-box/migrations"
	"github.com/JaimeStill/suggestion-box/pkg/database"
	"github.com/spf13/cobra"
)

func migrateCmd(configDir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	run := func(direction database.Direction) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configDir)
			if err != nil {
				return fmt.Errorf("config load failed: %w", err)
			}
			if err := database.Migrate(&cfg.Database, migrations.FS, migrations.Dir, direction); err != nil {
				return err
			}
			return printVersion(cmd, &cfg.Database)
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE:  run(database.Up),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Revert the most recent migration",
			Args:  cobra.NoArgs,
			RunE:  run(database.Down),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg, err := config.Load(*configDir)
				if err != nil {
					return fmt.Errorf("config load failed: %w", err)
				}
				return printVersion(cmd, &cfg.Database)
			},
		},
	)

	return cmd
}

func printVersion(cmd *cobra.Command, cfg *database.Config) error {
	v, dirty, err := database.Version(cfg, migrations.FS, migrations.Dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty: %t)\n", v, dirty)
	return nil
}
