// Command toolctl is the operator CLI of tool-suite: it reports the resolved
// API configuration, probes the backend and calls its endpoints.
package main

import (
	"os"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd(newCLI(os.Stdout, os.Stderr)).Execute(); err != nil {
		os.Exit(1)
	}
}
