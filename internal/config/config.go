package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	// GatewayPort is the fixed port the gateway listens on inside the
	// container. The host side of the port mapping is configurable, the
	// container side is always this value.
	GatewayPort = 18789

	// DefaultPort is the default host port, matching GatewayPort.
	DefaultPort = 18789

	// DefaultDirName is the subfolder under the user home directory used
	// as the default install directory.
	DefaultDirName = "openclaw"

	// Image is the gateway container image reference.
	Image = "ghcr.io/openclaw/openclaw:latest"

	// ManifestFileName is the compose file written into the install
	// directory.
	ManifestFileName = "docker-compose.yml"

	// ConfigDirName and WorkspaceDirName are the bind-mount source
	// directories created under the install directory.
	ConfigDirName    = "config"
	WorkspaceDirName = "workspace"
)

// Validation errors.
var (
	ErrInvalidPort       = errors.New("port must be an integer between 1 and 65535")
	ErrInstallDirEmpty   = errors.New("install directory must not be empty")
	ErrInstallDirRelative = errors.New("install directory must be an absolute path")
)

// Deployment holds the resolved install parameters for a single run.
type Deployment struct {
	// InstallDir is the absolute directory the manifest and bind-mount
	// directories are created in.
	InstallDir string

	// Port is the host port mapped to the gateway's container port.
	Port int

	// Image is the container image reference to deploy.
	Image string
}

// New validates the parameters and returns an immutable Deployment.
func New(installDir string, port int) (*Deployment, error) {
	if installDir == "" {
		return nil, ErrInstallDirEmpty
	}
	if !filepath.IsAbs(installDir) {
		return nil, fmt.Errorf("%w: %s", ErrInstallDirRelative, installDir)
	}
	if err := ValidatePort(port); err != nil {
		return nil, err
	}
	return &Deployment{
		InstallDir: filepath.Clean(installDir),
		Port:       port,
		Image:      Image,
	}, nil
}

// DefaultInstallDir returns the platform default install directory
// (user home + DefaultDirName). This is the only place the installer
// consults ambient process state.
func DefaultInstallDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// No resolvable home directory; fall back to a subfolder of the
		// working directory so the wizard still has a usable suggestion.
		wd, _ := os.Getwd()
		return filepath.Join(wd, DefaultDirName)
	}
	return filepath.Join(home, DefaultDirName)
}

// ParsePort parses a user-supplied port string. An empty string yields
// DefaultPort.
func ParsePort(s string) (int, error) {
	if s == "" {
		return DefaultPort, nil
	}
	port, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPort, s)
	}
	if err := ValidatePort(port); err != nil {
		return 0, err
	}
	return port, nil
}

// ValidatePort checks that port is in the valid TCP range.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%w: got %d", ErrInvalidPort, port)
	}
	return nil
}

// ManifestPath returns the path of the compose manifest for this
// deployment.
func (d *Deployment) ManifestPath() string {
	return filepath.Join(d.InstallDir, ManifestFileName)
}

// ConfigDir returns the host path bind-mounted as the gateway's
// configuration directory.
func (d *Deployment) ConfigDir() string {
	return filepath.Join(d.InstallDir, ConfigDirName)
}

// WorkspaceDir returns the host path bind-mounted as the gateway's
// workspace directory.
func (d *Deployment) WorkspaceDir() string {
	return filepath.Join(d.InstallDir, WorkspaceDirName)
}

// AccessURL returns the local URL the gateway console is reachable at
// once the service is up.
func (d *Deployment) AccessURL() string {
	return fmt.Sprintf("http://localhost:%d", d.Port)
}
