package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the shell server flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-mode run mode ("development" or "production")
//	-title application title
//	-api-base-url production API origin override
//	-request-timeout outbound API request timeout (e.g., "10s")
//	-proxy-target dev proxy target origin
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var mode string
	var title string
	var apiBaseURL string
	var requestTimeout time.Duration
	var proxyTarget string
	var jsonConfigPath string

	fs := flag.NewFlagSet("tool-suite", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&mode, "mode", "", "Run mode: development or production")
	fs.StringVar(&title, "title", "", "Application title")
	fs.StringVar(&apiBaseURL, "api-base-url", "", "Production API origin override")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "API request timeout (e.g., 10s)")
	fs.StringVar(&proxyTarget, "proxy-target", "", "Dev proxy target origin")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			Mode:  mode,
			Title: title,
		},
		API: API{
			BaseURL:        apiBaseURL,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Proxy: Proxy{
			Target: proxyTarget,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
