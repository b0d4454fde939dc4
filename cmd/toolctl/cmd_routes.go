package main

import (
	"github.com/MKhiriev/tool-suite/internal/router"
	"github.com/MKhiriev/tool-suite/internal/views"
	"github.com/spf13/cobra"
)

func newRoutesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table of the shell",
		Args:  cobra.NoArgs,
		// the route table needs no configuration
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := [][]string{{"PATH", "NAME", "VIEW", "TITLE"}}
			for _, route := range router.DefaultTable().Routes() {
				page, _ := views.Lookup(route.View)
				rows = append(rows, []string{route.Path, route.Name, string(route.View), page.Title})
			}

			c.table(rows)
			return nil
		},
	}
}
