package main

import (
	"github.com/MKhiriev/tool-suite/internal/diagnostics"
	"github.com/spf13/cobra"
)

func newConfigCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved API configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := diagnostics.CheckAPIConfig(c.cfg, c.logger)

			c.title("API configuration")
			c.field("environment", report.Environment)
			c.field("base url", report.BaseURL)
			c.field("valid", report.IsValid)
			c.field("app title", c.cfg.AppTitle)
			c.field("timeout", c.cfg.RequestTimeout)
			if c.cfg.IsDevelopment {
				c.field("origin", c.cfg.Origin)
			}
			return nil
		},
	}
}
