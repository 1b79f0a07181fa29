package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/JaimeStill/suggestion-box/web/app"
	"github.com/spf13/cobra"
)

func routesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the application route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := app.Routes()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPATH\tVIEW\tTITLE")
			for _, e := range table.Entries() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Name, e.Path, e.View, e.Label())
			}
			return w.Flush()
		},
	}
}
