package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"resume-wizard/internal/model"
)

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the available templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, t := range model.Catalogue {
				def := ""
				if t.ID == model.DefaultTemplate {
					def = " (default)"
				}
				fmt.Fprintf(tw, "%s\t%s%s\t%s\n", t.ID, t.Name, def, t.Description)
			}
			return tw.Flush()
		},
	}
}
