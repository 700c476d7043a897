package compose

import (
	"fmt"

	"github.com/openclaw/installer/internal/config"
)

const (
	// ServiceName is the compose service and container name.
	ServiceName = "openclaw"

	// containerHome is the service account's home inside the container.
	// The two bind mounts land under it.
	containerHome = "/home/openclaw/.openclaw"

	// RestartPolicy keeps the gateway running across daemon restarts
	// unless the user explicitly stops it.
	RestartPolicy = "unless-stopped"
)

// Environment variable names the gateway reads at boot.
const (
	EnvGatewayToken      = "OPENCLAW_GATEWAY_TOKEN"
	EnvMode              = "OPENCLAW_ENV"
	EnvAllowUnconfigured = "OPENCLAW_ALLOW_UNCONFIGURED"
	EnvGatewayBind       = "OPENCLAW_GATEWAY_BIND"
	EnvGatewayPort       = "OPENCLAW_GATEWAY_PORT"
)

// Manifest is the root of the compose document.
type Manifest struct {
	Services map[string]Service `yaml:"services"`
}

// Service describes the single gateway service.
type Service struct {
	Image         string            `yaml:"image"`
	ContainerName string            `yaml:"container_name"`
	Restart       string            `yaml:"restart"`
	Ports         []string          `yaml:"ports"`
	Volumes       []string          `yaml:"volumes"`
	Environment   map[string]string `yaml:"environment"`
	Healthcheck   *Healthcheck      `yaml:"healthcheck,omitempty"`
	Command       []string          `yaml:"command,omitempty"`
}

// Healthcheck is the compose health probe block.
type Healthcheck struct {
	Test     []string `yaml:"test"`
	Interval string   `yaml:"interval"`
	Timeout  string   `yaml:"timeout"`
	Retries  int      `yaml:"retries"`
}

// New renders the manifest for a deployment with the token generated in
// the same run. The container side of the port mapping is always the
// gateway's fixed listening port.
func New(d *config.Deployment, tokenHex string) *Manifest {
	return &Manifest{
		Services: map[string]Service{
			ServiceName: {
				Image:         d.Image,
				ContainerName: ServiceName,
				Restart:       RestartPolicy,
				Ports: []string{
					fmt.Sprintf("%d:%d", d.Port, config.GatewayPort),
				},
				Volumes: []string{
					fmt.Sprintf("./%s:%s", config.ConfigDirName, containerHome),
					fmt.Sprintf("./%s:%s/%s", config.WorkspaceDirName, containerHome, config.WorkspaceDirName),
				},
				Environment: map[string]string{
					EnvGatewayToken:      tokenHex,
					EnvMode:              "production",
					EnvAllowUnconfigured: "true",
					EnvGatewayBind:       "0.0.0.0",
					EnvGatewayPort:       fmt.Sprintf("%d", config.GatewayPort),
				},
				Healthcheck: &Healthcheck{
					Test: []string{
						"CMD",
						"curl", "-fsS",
						fmt.Sprintf("http://127.0.0.1:%d/health", config.GatewayPort),
					},
					Interval: "30s",
					Timeout:  "10s",
					Retries:  3,
				},
				Command: []string{
					"gateway",
					"--port", fmt.Sprintf("%d", config.GatewayPort),
				},
			},
		},
	}
}
