package commands

import (
	"github.com/spf13/cobra"

	"github.com/openclaw/installer/cmd/openclaw-install/handlers"
)

// Doctor returns the command for diagnosing the install environment.
//
// This command runs the same preflight checks the installer performs,
// without changing anything: client tools on PATH, daemon reachability
// and compose availability.
func Doctor() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the Docker environment without installing",
		Long: `Diagnose the environment openclaw-install needs.

Checks, in order:
  - required and optional client tools on PATH
  - Docker daemon reachability
  - compose availability (docker compose plugin or legacy docker-compose)

Nothing is created or modified. The command exits non-zero when a
required check fails.

Examples:
  # Check the environment before installing
  openclaw-install doctor`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Doctor(cmd.Context())
		},
	}
}
