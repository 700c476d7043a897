package docker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// Compose operation errors.
var (
	ErrPullFailed  = errors.New("image pull failed")
	ErrStartFailed = errors.New("service start failed")
)

// composeCmd builds a compose invocation rooted at dir using the flavor
// selected during detection.
func (r *Runtime) composeCmd(ctx context.Context, dir string, args ...string) *exec.Cmd {
	cmd := r.execCommand(ctx, r.composeBin, append(append([]string{}, r.composeArgs...), args...)...)
	cmd.Dir = dir
	return cmd
}

// Pull fetches the service image. Failures are typically
// network-related; the error wraps ErrPullFailed with the exit detail.
func (r *Runtime) Pull(ctx context.Context, dir string) error {
	cmd := r.composeCmd(ctx, dir, "pull")
	cmd.Stdout = r.output
	cmd.Stderr = r.output

	r.logger.Info("pulling image", "compose", r.flavor)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %w", ErrPullFailed, err)
	}
	return nil
}

// Up starts the service detached. The most common failure here is a
// host port conflict.
func (r *Runtime) Up(ctx context.Context, dir string) error {
	cmd := r.composeCmd(ctx, dir, "up", "-d")
	cmd.Stdout = r.output
	cmd.Stderr = r.output

	r.logger.Info("starting service")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %w", ErrStartFailed, err)
	}
	return nil
}

// Status queries compose for the state of one service through its
// machine-readable output. A service absent from the listing reports
// StateGone with no error.
func (r *Runtime) Status(ctx context.Context, dir, service string) (ServiceState, error) {
	cmd := r.composeCmd(ctx, dir, "ps", "--format", "json")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return StateUnknown, fmt.Errorf("compose ps failed: %w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}

	state, err := parseStatus(stdout.Bytes(), service)
	if err != nil {
		return StateUnknown, err
	}
	r.logger.Debug("service status", "service", service, "state", state)
	return state, nil
}
