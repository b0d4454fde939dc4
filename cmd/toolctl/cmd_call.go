package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/tool-suite/internal/adapter"
	"github.com/MKhiriev/tool-suite/internal/app"
	"github.com/spf13/cobra"
)

var errInvalidData = errors.New("--data is not valid JSON")

func newCallCmd(c *cli) *cobra.Command {
	var data string

	cmd := &cobra.Command{
		Use:   "call METHOD PATH",
		Short: "Send a request to the tools backend",
		Long: `Sends one request to {baseURL}PATH and prints the JSON response.

Example:
  toolctl call POST /v1/text/to-traditional --data '{"content":"测试简体转繁体"}'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			method := strings.ToUpper(args[0])
			path := args[1]
			if !strings.HasPrefix(path, "/") {
				path = "/" + path
			}

			var body any
			if data != "" {
				if !json.Valid([]byte(data)) {
					return errInvalidData
				}
				body = json.RawMessage(data)
			}

			client, err := c.client()
			if err != nil {
				return err
			}

			resp, err := client.Request(cmd.Context(), method, path, body)
			if err != nil {
				return c.reportAPIError(err)
			}

			if resp.StatusCode != http.StatusOK {
				c.printf("%s\n", helpStyle.Render(fmt.Sprintf("status %d", resp.StatusCode)))
			}
			return c.printBody(resp.Body)
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "JSON request body")
	return cmd
}

// reportAPIError prints a one-line hint matching the error kind and returns
// err unchanged.
func (c *cli) reportAPIError(err error) error {
	kind := adapter.Classify(err)
	c.printf("%s %s\n", errorStyle.Render(kind.String()), err)

	switch kind {
	case adapter.KindNetwork:
		c.printf("%s\n", helpStyle.Render(app.MsgBackendHint))
	case adapter.KindMethodNotAllowed:
		c.printf("%s\n", helpStyle.Render(app.MsgMethodNotAllowed))
	}

	var httpErr *adapter.HTTPError
	if errors.As(err, &httpErr) && len(httpErr.Body) > 0 {
		c.printf("%s\n", httpErr.Body)
	}
	return err
}
