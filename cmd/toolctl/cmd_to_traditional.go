package main

import (
	"strings"

	"github.com/MKhiriev/tool-suite/internal/service"
	"github.com/spf13/cobra"
)

func newToTraditionalCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "to-traditional TEXT",
		Short: "Convert simplified Chinese text to traditional Chinese",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}

			inner, err := service.NewTextService(client, c.logger)
			if err != nil {
				return err
			}
			text := service.NewTextValidationService().Wrap(inner)

			body, err := text.ToTraditional(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return c.reportAPIError(err)
			}

			return c.printBody(body)
		},
	}
}
