package docker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
)

// InstallURL is shown to the user when no Docker client is found.
const InstallURL = "https://docs.docker.com/get-docker/"

// Preflight errors.
var (
	ErrNotInstalled   = errors.New("docker client not installed")
	ErrNotRunning     = errors.New("docker daemon not running")
	ErrComposeMissing = errors.New("no compose command available")
	ErrNotElevated    = errors.New("administrator privileges required")
)

// ComposeFlavor identifies which compose invocation the runtime uses.
type ComposeFlavor string

const (
	// ComposeIntegrated is the modern `docker compose` plugin form.
	ComposeIntegrated ComposeFlavor = "docker compose"

	// ComposeStandalone is the legacy `docker-compose` binary.
	ComposeStandalone ComposeFlavor = "docker-compose"
)

type (
	// ExecCommandFunc creates commands for CLI invocations. Tests inject
	// fakes through this.
	ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

	// LookPathFunc resolves a binary on the execution path.
	LookPathFunc func(file string) (string, error)

	// Option configures a Runtime during Detect.
	Option func(*Runtime)
)

// Runtime is the handle for a detected Docker installation. The compose
// flavor is resolved once in Detect and reused for pull, up and status.
type Runtime struct {
	binary      string
	composeBin  string
	composeArgs []string
	flavor      ComposeFlavor

	execCommand ExecCommandFunc
	lookPath    LookPathFunc
	output      io.Writer
	logger      *log.Logger
}

// WithExecCommand overrides command creation.
func WithExecCommand(fn ExecCommandFunc) Option {
	return func(r *Runtime) { r.execCommand = fn }
}

// WithLookPath overrides PATH resolution.
func WithLookPath(fn LookPathFunc) Option {
	return func(r *Runtime) { r.lookPath = fn }
}

// WithOutput sets the writer that pull/up progress is streamed to.
func WithOutput(w io.Writer) Option {
	return func(r *Runtime) { r.output = w }
}

// WithLogger sets the structured logger.
func WithLogger(logger *log.Logger) Option {
	return func(r *Runtime) { r.logger = logger }
}

// Flavor returns the compose invocation form selected at detection.
func (r *Runtime) Flavor() ComposeFlavor { return r.flavor }

// Binary returns the resolved docker client path.
func (r *Runtime) Binary() string { return r.binary }

// Detect verifies the Docker environment and returns a Runtime handle.
//
// Checks run in order: client binary on PATH, elevated privileges
// (Windows only), daemon reachability, compose availability. Each
// failure maps to one of the package sentinel errors.
func Detect(ctx context.Context, opts ...Option) (*Runtime, error) {
	r := &Runtime{
		execCommand: exec.CommandContext,
		lookPath:    exec.LookPath,
		output:      os.Stdout,
		logger:      log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	path, err := r.lookPath("docker")
	if err != nil {
		return nil, fmt.Errorf("%w: install it from %s", ErrNotInstalled, InstallURL)
	}
	r.binary = path

	if err := checkElevation(); err != nil {
		return nil, err
	}

	if err := r.runSilent(ctx, r.binary, "info", "--format", "{{.ServerVersion}}"); err != nil {
		return nil, fmt.Errorf("%w: start Docker Desktop or the docker service and retry", ErrNotRunning)
	}

	switch {
	case r.runSilent(ctx, r.binary, "compose", "version") == nil:
		r.flavor = ComposeIntegrated
		r.composeBin = r.binary
		r.composeArgs = []string{"compose"}
	default:
		legacy, lookErr := r.lookPath("docker-compose")
		if lookErr != nil || r.runSilent(ctx, legacy, "--version") != nil {
			return nil, fmt.Errorf("%w: neither `docker compose` nor `docker-compose` works", ErrComposeMissing)
		}
		r.flavor = ComposeStandalone
		r.composeBin = legacy
	}

	r.logger.Debug("docker runtime detected", "client", r.binary, "compose", r.flavor)
	return r, nil
}

// runSilent runs a command discarding its output; only the exit status
// matters.
func (r *Runtime) runSilent(ctx context.Context, name string, args ...string) error {
	cmd := r.execCommand(ctx, name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}
