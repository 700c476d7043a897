package wizard

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/openclaw/installer/internal/config"
)

// Result holds the answers from the interactive wizard.
type Result struct {
	// InstallDir is the directory answer; empty means "keep default".
	InstallDir string

	// Port is the raw port answer; empty means "keep default".
	Port string

	// Confirmed is the go/no-go answer.
	Confirmed bool
}

// Defaults seeds the prompts.
type Defaults struct {
	InstallDir string
	Port       int
}

// Run prompts for install parameters and the confirmation gate. The
// context is used for cancellation (Ctrl+C).
func Run(ctx context.Context, defaults Defaults) (*Result, error) {
	result := &Result{}

	if err := runParametersGroup(ctx, defaults, result); err != nil {
		return nil, fmt.Errorf("parameters: %w", err)
	}

	deployment, err := result.ToDeployment(defaults)
	if err != nil {
		return nil, err
	}

	if err := runConfirmGroup(ctx, deployment, result); err != nil {
		return nil, fmt.Errorf("confirmation: %w", err)
	}
	if !result.Confirmed {
		return nil, ErrDeclined
	}

	return result, nil
}

// ToDeployment resolves the raw answers against the defaults into a
// validated Deployment.
func (r *Result) ToDeployment(defaults Defaults) (*config.Deployment, error) {
	dir := strings.TrimSpace(r.InstallDir)
	if dir == "" {
		dir = defaults.InstallDir
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve install directory %q: %w", dir, err)
	}

	port := defaults.Port
	if strings.TrimSpace(r.Port) != "" {
		port, err = config.ParsePort(strings.TrimSpace(r.Port))
		if err != nil {
			return nil, err
		}
	}

	return config.New(abs, port)
}
