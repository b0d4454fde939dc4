package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/tool-suite/internal/adapter"
	"github.com/MKhiriev/tool-suite/internal/app"
	"github.com/MKhiriev/tool-suite/internal/config"
	"github.com/MKhiriev/tool-suite/internal/logger"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// cli carries the state shared by every toolctl command.
type cli struct {
	out    io.Writer
	errOut io.Writer

	// config flags forwarded to the config package
	mode       string
	baseURL    string
	timeout    string
	serverAddr string
	configPath string

	copy    bool
	verbose bool

	cfg    config.APIConfig
	logger *logger.Logger

	writeClipboard func(string) error
	newClient      func(config.APIConfig, adapter.RequestLogger) (adapter.APIClient, error)
}

func newCLI(out, errOut io.Writer) *cli {
	return &cli{
		out:            out,
		errOut:         errOut,
		writeClipboard: clipboard.WriteAll,
		newClient:      adapter.NewHTTPAPIClient,
	}
}

// configArgs turns the persistent flags that were set into the flag syntax
// of the config package, so toolctl shares its precedence rules.
func (c *cli) configArgs() []string {
	var args []string
	add := func(name, value string) {
		if value != "" {
			args = append(args, "-"+name, value)
		}
	}

	add("mode", c.mode)
	add("api-base-url", c.baseURL)
	add("request-timeout", c.timeout)
	add("a", c.serverAddr)
	add("config", c.configPath)
	return args
}

func (c *cli) load() error {
	cfg, err := config.GetAPIConfig(c.configArgs())
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := zerolog.InfoLevel
	if c.verbose {
		level = zerolog.DebugLevel
	}
	l := logger.NewConsoleLogger(app.AppName+"-ctl", c.errOut)
	l.Logger = l.Level(level)
	c.logger = l

	return nil
}

func (c *cli) client() (adapter.APIClient, error) {
	return c.newClient(c.cfg, adapter.NewZerologRequestLogger(c.logger))
}

func (c *cli) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

func (c *cli) title(s string) {
	c.printf("%s\n", titleStyle.Render(s))
}

func (c *cli) field(key string, value any) {
	c.printf("%s%v\n", keyStyle.Render(key), value)
}

// printBody pretty-prints a JSON body (raw bytes otherwise) and copies the
// body to the clipboard when --copy is set.
func (c *cli) printBody(body []byte) error {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		c.printf("%s\n", body)
	} else {
		c.printf("%s\n", pretty.String())
	}

	if !c.copy {
		return nil
	}
	if err := c.writeClipboard(string(body)); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	c.printf("%s\n", helpStyle.Render("copied to clipboard"))
	return nil
}

func (c *cli) table(rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = cellStyle.Width(widths[i] + 2).Render(cell)
		}
		c.printf("%s\n", strings.TrimRight(lipgloss.JoinHorizontal(lipgloss.Top, cells...), " "))
	}
}
