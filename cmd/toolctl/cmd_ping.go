package main

import (
	"errors"

	"github.com/MKhiriev/tool-suite/internal/app"
	"github.com/MKhiriev/tool-suite/internal/diagnostics"
	"github.com/spf13/cobra"
)

var errUnreachable = errors.New("api server is unreachable")

func newPingCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check that the tools backend answers on the base URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if diagnostics.TestAPIConnection(cmd.Context(), c.cfg, c.logger) {
				c.printf("%s %s\n", okStyle.Render("reachable"), c.cfg.BaseURL)
				return nil
			}

			c.printf("%s %s\n", errorStyle.Render("unreachable"), c.cfg.BaseURL)
			c.printf("%s\n", helpStyle.Render(app.MsgBackendHint))
			return errUnreachable
		},
	}
}
