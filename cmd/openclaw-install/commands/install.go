package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openclaw/installer/cmd/openclaw-install/handlers"
)

// Install returns the command for provisioning the OpenClaw gateway.
//
// This command handles the complete install lifecycle: verifying the
// Docker environment, collecting the install directory and host port,
// staging directories, generating a gateway token, writing the compose
// manifest and starting the service.
//
// Optional flags:
//
//	--dir, -d: Install directory (default: ~/openclaw)
//	--port, -p: Host port for the gateway console (default: 18789)
//	--yes, -y: Accept defaults and skip all prompts
//	--force: Overwrite an existing manifest without asking
//	--no-launch: Write the manifest but do not pull or start the service
//
// Environment variables:
//
//	OPENCLAW_INSTALL_DIR: Install directory (same as --dir)
//	OPENCLAW_INSTALL_PORT: Host port (same as --port)
func Install() *cobra.Command {
	var opts handlers.InstallOptions

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install and start the OpenClaw gateway",
		Long: `Install and start the OpenClaw gateway with Docker Compose.

The installer verifies the Docker environment, asks for the install
directory and port, generates a fresh gateway token, writes a
docker-compose.yml into the install directory and starts the service.

Re-running the installer over an existing directory rewrites the
manifest with a fresh token. The previous token stops working.

Examples:
  # Interactive install with prompts
  openclaw-install install

  # Unattended install with defaults
  openclaw-install install --yes

  # Unattended install into a specific directory and port
  openclaw-install install --yes --dir /srv/openclaw --port 8080

  # Only write the manifest, start it later
  openclaw-install install --yes --no-launch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Dir = viper.GetString("dir")
			opts.Port = viper.GetString("port")
			return handlers.Install(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Dir, "dir", "d", "", "Install directory (default: ~/openclaw)")
	cmd.Flags().StringVarP(&opts.Port, "port", "p", "", "Host port for the gateway console (default: 18789)")
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "Accept defaults and skip all prompts")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Overwrite an existing manifest without asking")
	cmd.Flags().BoolVar(&opts.NoLaunch, "no-launch", false, "Write the manifest but do not pull or start the service")

	viper.SetEnvPrefix("OPENCLAW_INSTALL")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("dir", cmd.Flags().Lookup("dir"))
	_ = viper.BindPFlag("port", cmd.Flags().Lookup("port"))

	return cmd
}
