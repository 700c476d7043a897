// Package main is the entry point for the openclaw-install CLI.
//
// openclaw-install provisions the OpenClaw gateway as a single Docker
// Compose service on a developer machine: it verifies the container
// runtime, collects the install directory and port, generates a gateway
// token, renders the compose manifest and starts the service.
//
// Commands: install, doctor, version, completion.
//
// For detailed usage information, run:
//
//	openclaw-install --help
package main

import (
	"fmt"
	"os"

	"github.com/openclaw/installer/cmd/openclaw-install/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
