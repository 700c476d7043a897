package handlers

import (
	"context"
	"io"

	"github.com/openclaw/installer/internal/platform/docker"
	"github.com/openclaw/installer/internal/ui"
	"github.com/openclaw/installer/internal/util/prerequisites"
)

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// checkAllPrereqs looks for client tools on PATH.
	checkAllPrereqs = prerequisites.CheckAll

	// probeDocker runs the full Docker preflight.
	probeDocker = func(ctx context.Context) (*docker.Runtime, error) {
		return docker.Detect(ctx, docker.WithOutput(io.Discard))
	}
)

// Doctor runs the installer's preflight checks without installing
// anything. It exits non-zero when a required check fails.
func Doctor(ctx context.Context) error {
	ui.Banner()

	ui.Section("Client tools")
	results := checkAllPrereqs()
	for _, res := range results.Results {
		name := res.Tool.Name
		if !res.Tool.Required {
			name += " (optional)"
		}
		extra := res.Path
		if !res.Found {
			extra = "not found, see " + res.Tool.InstallURL
		}
		ui.Check(name, res.Found, extra)
	}

	ui.Section("Docker environment")
	rt, detectErr := probeDocker(ctx)
	if detectErr != nil {
		ui.Check("docker environment", false, detectErr.Error())
	} else {
		ui.Check("docker daemon", true, rt.Binary())
		ui.Check("compose", true, string(rt.Flavor()))
	}
	ui.Info("")

	if err := results.Error(); err != nil {
		ui.Fail(err.Error())
		return err
	}
	if detectErr != nil {
		ui.Fail("fix the Docker environment above and run doctor again")
		return detectErr
	}

	ui.Info("All checks passed. Run `openclaw-install install` to provision the gateway.")
	return nil
}
