// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic
// and can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/openclaw/installer/internal/config"
	"github.com/openclaw/installer/internal/config/wizard"
	"github.com/openclaw/installer/internal/netutil"
	"github.com/openclaw/installer/internal/platform/docker"
	"github.com/openclaw/installer/internal/provision"
	"github.com/openclaw/installer/internal/ui"
)

// ErrManifestExists is returned in unattended mode when the install
// directory already holds a manifest and --force was not given.
var ErrManifestExists = errors.New("a compose manifest already exists in the install directory; rerun with --force to overwrite it")

// InstallOptions carries the resolved flag values for the install
// command.
type InstallOptions struct {
	// Dir is the install directory; empty means the platform default.
	Dir string

	// Port is the raw host port answer; empty means the default.
	Port string

	// Yes skips all prompts and accepts defaults.
	Yes bool

	// Force overwrites an existing manifest without asking.
	Force bool

	// NoLaunch stops after the manifest is written.
	NoLaunch bool
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// detectRuntime performs the Docker preflight.
	detectRuntime = func(ctx context.Context, out io.Writer) (provision.Runtime, error) {
		rt, err := docker.Detect(ctx, docker.WithOutput(out))
		if err != nil {
			return nil, err
		}
		return rt, nil
	}

	// runWizard drives the interactive parameter prompts.
	runWizard = wizard.Run

	// confirmOverwrite asks before replacing an existing manifest.
	confirmOverwrite = wizard.Confirm

	// newWorkflow assembles the provisioning workflow.
	newWorkflow = provision.New

	// interactive reports whether prompting is possible.
	interactive = ui.Interactive

	// statFile checks for an existing manifest.
	statFile = os.Stat

	// checkPortFree probes the chosen host port before launch.
	checkPortFree = netutil.CheckPortFree
)

// stageLabels maps workflow transitions to the progress rows printed
// during the install.
var stageLabels = map[provision.Stage]string{
	provision.StagePreflighted:     "Docker environment verified",
	provision.StageStaged:          "Install directory staged",
	provision.StageManifestWritten: "Compose manifest written",
	provision.StageLaunched:        "Gateway service started",
}

// Install provisions the OpenClaw gateway.
//
// The workflow runs in fixed order: Docker preflight, parameter
// resolution (wizard or flags), directory staging, token and manifest
// generation, compose pull/up and post-launch verification. Any failure
// stops the run where it happened; already-created files are left in
// place for inspection.
func Install(ctx context.Context, opts InstallOptions) error {
	ui.Banner()

	detect := func(ctx context.Context) (provision.Runtime, error) {
		ui.Section("Preflight")
		return detectRuntime(ctx, os.Stdout)
	}

	resolve := func(ctx context.Context) (*config.Deployment, error) {
		deployment, err := func() (*config.Deployment, error) {
			if opts.Yes || !interactive() {
				return resolveFromFlags(opts)
			}
			return resolveInteractive(ctx, opts)
		}()
		if err != nil {
			return nil, err
		}

		// A bound port is only a warning: the listener may be a previous
		// gateway run that compose up will replace.
		if !opts.NoLaunch {
			if portErr := checkPortFree(deployment.Port); portErr != nil {
				ui.Warn(portErr.Error() + "; the gateway may fail to bind")
			}
		}
		return deployment, nil
	}

	wfOpts := []provision.Option{
		provision.WithObserver(func(s provision.Stage) {
			if label, ok := stageLabels[s]; ok {
				ui.Check(label, true, "")
			}
		}),
	}
	if opts.NoLaunch {
		wfOpts = append(wfOpts, provision.WithNoLaunch())
	}

	result, err := newWorkflow(detect, resolve, wfOpts...).Run(ctx)
	if err != nil {
		if errors.Is(err, wizard.ErrDeclined) {
			ui.Info("Install cancelled. Nothing was changed.")
			return nil
		}
		ui.Fail(err.Error())
		return err
	}

	if result.Token.Weak() {
		ui.Warn("The gateway token was generated from a non-cryptographic source. " +
			"Replace it in " + result.Deployment.ManifestPath() + " before exposing the gateway.")
	}

	switch result.Stage {
	case provision.StageManifestWritten:
		ui.Info("Manifest written to " + result.Deployment.ManifestPath())
		ui.Info("Start the gateway later with `docker compose up -d` from that directory.")
	case provision.StageVerifyWarned:
		ui.Warn(result.Warning)
		ui.Success(result.Deployment, result.Token.Hex())
	default:
		ui.Success(result.Deployment, result.Token.Hex())
	}
	return nil
}

// resolveFromFlags builds the deployment without prompting, used for
// --yes runs and non-terminal stdout.
func resolveFromFlags(opts InstallOptions) (*config.Deployment, error) {
	dir := strings.TrimSpace(opts.Dir)
	if dir == "" {
		dir = config.DefaultInstallDir()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	port, err := config.ParsePort(strings.TrimSpace(opts.Port))
	if err != nil {
		return nil, err
	}

	deployment, err := config.New(abs, port)
	if err != nil {
		return nil, err
	}

	if !opts.Force {
		if _, err := statFile(deployment.ManifestPath()); err == nil {
			return nil, ErrManifestExists
		}
	}
	return deployment, nil
}

// resolveInteractive runs the wizard, then gates on an overwrite
// confirmation when the target directory already holds a manifest.
func resolveInteractive(ctx context.Context, opts InstallOptions) (*config.Deployment, error) {
	defaults := wizard.Defaults{
		InstallDir: config.DefaultInstallDir(),
		Port:       config.DefaultPort,
	}
	if dir := strings.TrimSpace(opts.Dir); dir != "" {
		defaults.InstallDir = dir
	}
	if raw := strings.TrimSpace(opts.Port); raw != "" {
		port, err := config.ParsePort(raw)
		if err != nil {
			return nil, err
		}
		defaults.Port = port
	}

	answers, err := runWizard(ctx, defaults)
	if err != nil {
		return nil, err
	}
	deployment, err := answers.ToDeployment(defaults)
	if err != nil {
		return nil, err
	}

	if !opts.Force {
		if _, err := statFile(deployment.ManifestPath()); err == nil {
			ok, confirmErr := confirmOverwrite(ctx,
				"Overwrite the existing install?",
				deployment.ManifestPath()+" already exists and will be rewritten with a fresh gateway token. The previous token stops working.")
			if confirmErr != nil {
				return nil, confirmErr
			}
			if !ok {
				return nil, wizard.ErrDeclined
			}
		}
	}
	return deployment, nil
}
