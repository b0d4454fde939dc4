package main

import (
	"github.com/MKhiriev/tool-suite/internal/app"
	"github.com/spf13/cobra"
)

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "toolctl",
		Short: "Operator CLI of the " + app.AppName + " shell",
		Long: `toolctl inspects the API configuration the shell resolves, probes the
tools backend and calls its endpoints.

Configuration follows the shell server: environment variables first, then
flags, then the JSON file given by --config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.load()
		},
	}

	rootCmd.SetOut(c.out)
	rootCmd.SetErr(c.errOut)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.mode, "mode", "", "run mode: development or production")
	flags.StringVar(&c.baseURL, "base-url", "", "production API origin override")
	flags.StringVar(&c.timeout, "timeout", "", "API request timeout (e.g. 10s)")
	flags.StringVarP(&c.serverAddr, "server", "a", "", "shell server address used in development mode")
	flags.StringVarP(&c.configPath, "config", "c", "", "JSON config file path")
	flags.BoolVar(&c.copy, "copy", false, "copy the response body to the clipboard")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log API requests and responses")

	rootCmd.AddCommand(
		newConfigCmd(c),
		newPingCmd(c),
		newRoutesCmd(c),
		newCallCmd(c),
		newToTraditionalCmd(c),
		newVersionCmd(c),
	)

	return rootCmd
}
