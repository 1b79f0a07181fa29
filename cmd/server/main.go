// Command server runs the suggestion box web application.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Suggestion box web application",
		Long: `Serves the home, suggest and report views and stores the
suggestions and issue reports they collect.

Running without a subcommand is the same as "server serve".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configDir)
		},
	}

	cmd.PersistentFlags().StringVarP(&configDir, "config-dir", "c", ".", "Directory containing config.toml")

	cmd.AddCommand(
		serveCmd(&configDir),
		routesCmd(),
		migrateCmd(&configDir),
	)

	return cmd
}
